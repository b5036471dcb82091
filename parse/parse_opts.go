package parse

type parseOpts struct {
	strip bool
}

// ParseOption configures a call to Parse.
type ParseOption func(*parseOpts)

// ParseStrip causes Parse to drop all comments from the resulting
// document.  Newlines and blank lines occupied by dropped comments
// still count towards the layout of their containers, and trailing
// commas are not recorded.
func ParseStrip(v bool) ParseOption {
	return func(o *parseOpts) {
		o.strip = v
	}
}
