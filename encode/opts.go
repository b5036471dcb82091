package encode

type encOpts struct {
	colors *Colors
}

// EncodeOption configures a call to Encode.
type EncodeOption func(*encOpts)

// EncodeColors renders the output with the given terminal colors.
// Pass nil for plain output.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) {
		o.colors = c
	}
}
