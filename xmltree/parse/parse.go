// Package parse builds xmltree nodes from XML text.
//
// The grammar is a practical subset: elements, attributes, text and
// the five standard entities. Constructs led by <? or <! before the
// root element are skipped by scanning to the next '>', with no
// nested-comment awareness.
package parse

import (
	"fmt"
	"strings"

	"github.com/doctree/doctree/scan"
	"github.com/doctree/doctree/xmltree"
)

// Parse decodes one XML document from d. Input after the root
// element, other than whitespace, is an error. Errors unwrap to
// ErrParse and to a *scan.Error with the offset of the failure.
func Parse(d []byte) (*xmltree.Node, error) {
	c := scan.New(d)
	if err := skipProlog(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !c.More() {
		return nil, fmt.Errorf("%w: %w", ErrParse, scan.NewError(scan.ErrEOF, c.Pos()))
	}
	if c.Peek() != '<' {
		err := scan.ExpectedErr("'<'", c.Pos())
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	n, err := parseElement(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	c.SkipSpace()
	if c.More() {
		err := scan.UnexpectedErr(fmt.Sprintf("%q after root element", c.Peek()), c.Pos())
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return n, nil
}

// Valid reports whether d is one well-formed document.
func Valid(d []byte) bool {
	_, err := Parse(d)
	return err == nil
}

func skipProlog(c *scan.Cursor) error {
	for {
		c.SkipSpace()
		if c.Peek() != '<' {
			return nil
		}
		switch c.PeekAt(1) {
		case '?', '!':
			at := c.Offset()
			j := c.Find('>')
			if j < 0 {
				err := fmt.Errorf("%w prolog", scan.ErrUnterminated)
				return scan.NewError(err, c.PosAt(at))
			}
			c.Skip(j + 1 - c.Offset())
		default:
			return nil
		}
	}
}

func nameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_' || b == ':' || b == '-':
		return true
	default:
		return false
	}
}

func readName(c *scan.Cursor) string {
	var sb strings.Builder
	for c.More() && nameByte(c.Peek()) {
		sb.WriteByte(c.Next())
	}
	return sb.String()
}

// parseElement consumes one element, cursor at its '<'.
func parseElement(c *scan.Cursor) (*xmltree.Node, error) {
	openAt := c.Offset()
	c.Skip(1)
	name := readName(c)
	if name == "" {
		return nil, scan.ExpectedErr("element name", c.Pos())
	}
	n := xmltree.New(name)
	for {
		c.SkipSpace()
		if !c.More() {
			err := fmt.Errorf("%w element <%s>", scan.ErrUnterminated, name)
			return nil, scan.NewError(err, c.PosAt(openAt))
		}
		switch c.Peek() {
		case '/':
			if !c.Match("/>") {
				return nil, scan.ExpectedErr("'/>'", c.Pos())
			}
			return n, nil
		case '>':
			c.Skip(1)
			if err := parseContent(c, n, openAt); err != nil {
				return nil, err
			}
			return n, nil
		default:
			k, v, err := readAttr(c)
			if err != nil {
				return nil, err
			}
			n.SetAttr(k, v)
		}
	}
}

func readAttr(c *scan.Cursor) (string, string, error) {
	at := c.Offset()
	k := readName(c)
	if k == "" {
		return "", "", scan.ExpectedErr("attribute name", c.PosAt(at))
	}
	c.SkipSpace()
	if !c.Match("=") {
		return "", "", scan.ExpectedErr("'=' after attribute name", c.Pos())
	}
	c.SkipSpace()
	q := c.Peek()
	if q != '"' && q != '\'' {
		return "", "", scan.ExpectedErr("quoted attribute value", c.Pos())
	}
	quoteAt := c.Offset()
	c.Skip(1)
	v, err := readQuoted(c, q, quoteAt)
	if err != nil {
		return "", "", err
	}
	return k, v, nil
}

func readQuoted(c *scan.Cursor, q byte, quoteAt int) (string, error) {
	var sb strings.Builder
	for {
		if !c.More() {
			err := fmt.Errorf("%w attribute value", scan.ErrUnterminated)
			return "", scan.NewError(err, c.PosAt(quoteAt))
		}
		switch c.Peek() {
		case q:
			c.Skip(1)
			return sb.String(), nil
		case '&':
			writeEntity(c, &sb)
		default:
			sb.WriteByte(c.Next())
		}
	}
}

// writeEntity decodes the entity at the cursor. Anything that is not
// one of the five standard entities passes through literally.
func writeEntity(c *scan.Cursor, sb *strings.Builder) {
	switch {
	case c.Match("&lt;"):
		sb.WriteByte('<')
	case c.Match("&gt;"):
		sb.WriteByte('>')
	case c.Match("&amp;"):
		sb.WriteByte('&')
	case c.Match("&quot;"):
		sb.WriteByte('"')
	case c.Match("&apos;"):
		sb.WriteByte('\'')
	default:
		sb.WriteByte(c.Next())
	}
}

// parseContent consumes text runs and child elements up to the
// matching closing tag. Text runs concatenate in encounter order, so
// where text sat relative to children is not recorded.
func parseContent(c *scan.Cursor, n *xmltree.Node, openAt int) error {
	var text strings.Builder
	for {
		if !c.More() {
			err := fmt.Errorf("%w element <%s>", scan.ErrUnterminated, n.Name)
			return scan.NewError(err, c.PosAt(openAt))
		}
		switch {
		case c.Peek() == '<' && c.PeekAt(1) == '/':
			closeAt := c.Offset()
			c.Skip(2)
			name := readName(c)
			if name != n.Name {
				err := fmt.Errorf("closing tag </%s> does not match <%s>", name, n.Name)
				return scan.NewError(err, c.PosAt(closeAt))
			}
			if !c.Match(">") {
				return scan.ExpectedErr("'>'", c.Pos())
			}
			n.Text = text.String()
			return nil
		case c.Peek() == '<':
			child, err := parseElement(c)
			if err != nil {
				return err
			}
			n.AddChild(child)
		case c.Peek() == '&':
			writeEntity(c, &text)
		default:
			text.WriteByte(c.Next())
		}
	}
}
