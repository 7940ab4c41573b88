package scan

import "bytes"

// Cursor reads a document left to right. Grammar rules advance it past
// exactly what they consume on success and leave it unmoved on failure.
type Cursor struct {
	doc *PosDoc
	d   []byte
	i   int
}

func New(d []byte) *Cursor {
	return &Cursor{doc: NewPosDoc(d), d: d}
}

func (c *Cursor) Offset() int {
	return c.i
}

func (c *Cursor) More() bool {
	return c.i < len(c.d)
}

func (c *Cursor) Rest() []byte {
	return c.d[c.i:]
}

// Peek returns the byte at the cursor, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.i >= len(c.d) {
		return 0
	}
	return c.d[c.i]
}

// PeekAt returns the byte k past the cursor, or 0 past end of input.
func (c *Cursor) PeekAt(k int) byte {
	if c.i+k >= len(c.d) {
		return 0
	}
	return c.d[c.i+k]
}

// Next consumes and returns the byte at the cursor. Callers check More
// first.
func (c *Cursor) Next() byte {
	b := c.d[c.i]
	c.i++
	return b
}

func (c *Cursor) Skip(n int) {
	c.i += n
}

// Match consumes lit when the input at the cursor starts with it.
func (c *Cursor) Match(lit string) bool {
	if len(c.d)-c.i < len(lit) {
		return false
	}
	for j := 0; j < len(lit); j++ {
		if c.d[c.i+j] != lit[j] {
			return false
		}
	}
	c.i += len(lit)
	return true
}

// SkipSpace consumes the C-locale whitespace set.
func (c *Cursor) SkipSpace() {
	for c.i < len(c.d) && IsSpace(c.d[c.i]) {
		c.i++
	}
}

func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Find returns the offset of the next occurrence of b at or after the
// cursor, or -1 when there is none.
func (c *Cursor) Find(b byte) int {
	j := bytes.IndexByte(c.d[c.i:], b)
	if j < 0 {
		return -1
	}
	return c.i + j
}

func (c *Cursor) Pos() *Pos {
	return c.doc.Pos(c.i)
}

func (c *Cursor) PosAt(i int) *Pos {
	return c.doc.Pos(i)
}
