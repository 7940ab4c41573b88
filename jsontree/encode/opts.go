package encode

type EncodeOption func(*EncState)

// Pretty turns on multi-line output with indentation.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the spaces per nesting level for pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Precision sets the significant digits used for non-integral numbers.
func Precision(n int) EncodeOption {
	return func(es *EncState) { es.precision = n }
}

// Depth sets the starting nesting level, for embedding pretty output
// inside already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
