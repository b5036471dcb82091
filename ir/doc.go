// Package ir provides the intermediate representation (IR) for JSONC
// documents.
//
// # Overview
//
// The IR is a tree of nodes built once per formatting invocation by the
// parse package and consumed read-only by the encode package. Unlike a
// semantic JSON tree, the IR is lexical: scalar values and object keys keep
// their verbatim source bytes, and nodes carry the comments, blank-line
// markers, and layout decisions needed to re-emit the document with
// normalized whitespace.
//
// # Node Structure
//
// A Node is a tagged union over Type:
//
//   - NullType, BoolType, NumberType, StringType: Literal holds the exact
//     source bytes of the value.
//   - ArrayType: Values holds the elements in order.
//   - ObjectType: Fields[i] is the key for Values[i]; field nodes are
//     StringType nodes whose Literal is the verbatim quoted key. There are
//     always the same number of fields as values.
//
// Comments attach where they appear in source: Leading comments sit on their
// own lines before a node (on the field node for object entries), a Trailing
// comment shares the node's last output line, Open comments share a
// container's opening-bracket line, and End comments precede a container's
// closing bracket without belonging to any child. Comments following the
// document's value land in the root node's After slot.
//
// A container's Multiline flag is fixed at build time from its direct
// children only; nested containers decide independently.
package ir
