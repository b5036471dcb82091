package ir

import (
	"testing"
)

func TestCommentKind(t *testing.T) {
	c := &Comment{Text: "// line"}
	if c.Block() || c.Multiline() {
		t.Errorf("line comment misclassified: %+v", c)
	}
	c = &Comment{Text: "/* one */"}
	if !c.Block() || c.Multiline() {
		t.Errorf("block comment misclassified: %+v", c)
	}
	c = &Comment{Text: "/* one\ntwo */"}
	if !c.Block() || !c.Multiline() {
		t.Errorf("multiline block comment misclassified: %+v", c)
	}
}

func TestHasComments(t *testing.T) {
	obj := &Node{
		Type:   ObjectType,
		Fields: []*Node{Scalar(StringType, []byte(`"a"`))},
		Values: []*Node{Null()},
	}
	if obj.HasComments() {
		t.Error("no comments attached yet")
	}
	obj.Values[0].Trailing = &Comment{Text: "// t"}
	if !obj.HasComments() {
		t.Error("trailing comment on a direct child should count")
	}

	// comments inside a nested container do not count at the
	// outer level
	inner := &Node{Type: ArrayType, Open: []Comment{{Text: "/* c */"}}}
	outer := &Node{Type: ArrayType, Values: []*Node{inner}}
	if outer.HasComments() {
		t.Error("nested comments should not count")
	}
	if !inner.HasComments() {
		t.Error("open comment should count")
	}
}

func TestVisit(t *testing.T) {
	root := &Node{Type: ArrayType, Values: []*Node{
		Null(),
		{Type: ArrayType, Values: []*Node{Scalar(NumberType, []byte("1"))}},
	}}
	var pre, post int
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("visited pre=%d post=%d, want 4/4", pre, post)
	}
}
