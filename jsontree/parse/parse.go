// Package parse builds jsontree values from JSON text.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/doctree/doctree/jsontree"
	"github.com/doctree/doctree/scan"
)

// Parse decodes one complete JSON document from d. Input after the
// value, other than whitespace, is an error. Errors unwrap to ErrParse
// and to a *scan.Error with the offset of the failure.
func Parse(d []byte) (*jsontree.Value, error) {
	c := scan.New(d)
	v, err := parseValue(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	c.SkipSpace()
	if c.More() {
		err := scan.UnexpectedErr(fmt.Sprintf("%q after value", c.Peek()), c.Pos())
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

// Valid reports whether d is one well-formed JSON document.
func Valid(d []byte) bool {
	_, err := Parse(d)
	return err == nil
}

func parseValue(c *scan.Cursor) (*jsontree.Value, error) {
	c.SkipSpace()
	if !c.More() {
		return nil, scan.NewError(scan.ErrEOF, c.Pos())
	}
	switch b := c.Peek(); b {
	case 'n':
		if !c.Match("null") {
			return nil, scan.ExpectedErr("null", c.Pos())
		}
		return jsontree.Null(), nil
	case 't':
		if !c.Match("true") {
			return nil, scan.ExpectedErr("true", c.Pos())
		}
		return jsontree.FromBool(true), nil
	case 'f':
		if !c.Match("false") {
			return nil, scan.ExpectedErr("false", c.Pos())
		}
		return jsontree.FromBool(false), nil
	case '"':
		s, err := readString(c)
		if err != nil {
			return nil, err
		}
		return jsontree.FromString(s), nil
	case '[':
		return parseArray(c)
	case '{':
		return parseObject(c)
	default:
		if b == '-' || (b >= '0' && b <= '9') {
			return parseNumber(c)
		}
		return nil, scan.UnexpectedErr(fmt.Sprintf("%q", b), c.Pos())
	}
}

func parseNumber(c *scan.Cursor) (*jsontree.Value, error) {
	n, err := scan.Number(c.Rest())
	if err != nil {
		return nil, scan.NewError(err, c.Pos())
	}
	f, err := strconv.ParseFloat(string(c.Rest()[:n]), 64)
	if err != nil {
		return nil, scan.NewError(fmt.Errorf("%w: %v", scan.ErrNumber, err), c.Pos())
	}
	c.Skip(n)
	return jsontree.FromNumber(f), nil
}

func readString(c *scan.Cursor) (string, error) {
	start := c.Offset()
	c.Skip(1)
	var sb strings.Builder
	for {
		if !c.More() {
			err := fmt.Errorf("%w string", scan.ErrUnterminated)
			return "", scan.NewError(err, c.PosAt(start))
		}
		switch b := c.Next(); {
		case b == '"':
			return sb.String(), nil
		case b == '\\':
			if err := readEscape(c, &sb); err != nil {
				return "", err
			}
		case b < 0x20:
			return "", scan.NewError(scan.ErrStringControl, c.PosAt(c.Offset()-1))
		default:
			// Multibyte UTF-8 passes through unchanged.
			sb.WriteByte(b)
		}
	}
}

func readEscape(c *scan.Cursor, sb *strings.Builder) error {
	at := c.Offset() - 1
	if !c.More() {
		return scan.NewError(scan.ErrBadEscape, c.PosAt(at))
	}
	switch e := c.Next(); e {
	case '"', '\\', '/':
		sb.WriteByte(e)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		r, err := readRune(c, at)
		if err != nil {
			return err
		}
		sb.WriteRune(r)
	default:
		return scan.NewError(fmt.Errorf("%w %q", scan.ErrBadEscape, e), c.PosAt(at))
	}
	return nil
}

// readRune decodes the hex digits of a \u escape, combining a
// surrogate pair into one code point. A surrogate half that does not
// pair is an error.
func readRune(c *scan.Cursor, at int) (rune, error) {
	hi, err := hex4(c, at)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(rune(hi)) {
		return rune(hi), nil
	}
	if hi >= 0xDC00 || !c.Match(`\u`) {
		return 0, scan.NewError(scan.ErrBadSurrogate, c.PosAt(at))
	}
	lo, err := hex4(c, at)
	if err != nil {
		return 0, err
	}
	r := utf16.DecodeRune(rune(hi), rune(lo))
	if r == unicode.ReplacementChar {
		return 0, scan.NewError(scan.ErrBadSurrogate, c.PosAt(at))
	}
	return r, nil
}

func hex4(c *scan.Cursor, at int) (int, error) {
	v := 0
	for k := 0; k < 4; k++ {
		h := hexDigit(c.PeekAt(k))
		if h < 0 {
			return 0, scan.NewError(scan.ErrBadUnicode, c.PosAt(at))
		}
		v = v<<4 | h
	}
	c.Skip(4)
	return v, nil
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

func parseArray(c *scan.Cursor) (*jsontree.Value, error) {
	open := c.Offset()
	c.Skip(1)
	v := jsontree.FromSlice(nil)
	c.SkipSpace()
	if c.Match("]") {
		return v, nil
	}
	for {
		e, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		v.Arr = append(v.Arr, e)
		c.SkipSpace()
		if !c.More() {
			err := fmt.Errorf("%w array", scan.ErrUnterminated)
			return nil, scan.NewError(err, c.PosAt(open))
		}
		switch c.Next() {
		case ']':
			return v, nil
		case ',':
			commaAt := c.Offset() - 1
			c.SkipSpace()
			if c.Peek() == ']' {
				return nil, scan.UnexpectedErr("trailing comma", c.PosAt(commaAt))
			}
		default:
			return nil, scan.ExpectedErr("',' or ']' in array", c.PosAt(c.Offset()-1))
		}
	}
}

func parseObject(c *scan.Cursor) (*jsontree.Value, error) {
	open := c.Offset()
	c.Skip(1)
	v := jsontree.FromMap(make(map[string]*jsontree.Value))
	c.SkipSpace()
	if c.Match("}") {
		return v, nil
	}
	for {
		c.SkipSpace()
		if !c.More() {
			err := fmt.Errorf("%w object", scan.ErrUnterminated)
			return nil, scan.NewError(err, c.PosAt(open))
		}
		if c.Peek() != '"' {
			return nil, scan.ExpectedErr("object key", c.Pos())
		}
		k, err := readString(c)
		if err != nil {
			return nil, err
		}
		c.SkipSpace()
		if !c.Match(":") {
			return nil, scan.ExpectedErr("':' after object key", c.Pos())
		}
		e, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		// Duplicate keys keep the last occurrence.
		v.Obj[k] = e
		c.SkipSpace()
		if !c.More() {
			err := fmt.Errorf("%w object", scan.ErrUnterminated)
			return nil, scan.NewError(err, c.PosAt(open))
		}
		switch c.Next() {
		case '}':
			return v, nil
		case ',':
			commaAt := c.Offset() - 1
			c.SkipSpace()
			if c.Peek() == '}' {
				return nil, scan.UnexpectedErr("trailing comma", c.PosAt(commaAt))
			}
		default:
			return nil, scan.ExpectedErr("',' or '}' in object", c.PosAt(c.Offset()-1))
		}
	}
}
