package token

// lineComment scans a comment starting at d[0:2] == "//", returning the
// number of bytes up to but not including the terminating newline. A line
// comment at the end of the document is terminated by EOF.
func lineComment(d []byte) int {
	i := 2
	for i < len(d) && d[i] != '\n' {
		i++
	}
	return i
}

// blockComment scans a comment starting at d[0:2] == "/*", returning the
// number of bytes consumed including the closing "*/". Block comments do
// not nest: the first "*/" terminates the comment.
func blockComment(d []byte) (int, error) {
	i := 2
	for i+1 < len(d) {
		if d[i] == '*' && d[i+1] == '/' {
			return i + 2, nil
		}
		i++
	}
	return 0, ErrUnterminatedComment
}
