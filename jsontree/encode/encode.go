package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/doctree/doctree/jsontree"
)

type EncState struct {
	col, depth int
	indent     int
	precision  int
	pretty     bool

	Color func(jsontree.Type, ColorAttr, string) string
}

// Encode writes v to w as JSON. Output is compact unless the Pretty
// option is given. Object entries are written in sorted key order, so
// equal values encode to equal text.
func Encode(v *jsontree.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:    2,
		precision: 6,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es)
}

func encode(v *jsontree.Value, w io.Writer, es *EncState) error {
	switch v.Type {
	case jsontree.NullType:
		return encodeNull(w, es)
	case jsontree.BoolType:
		return encodeBool(v, w, es)
	case jsontree.NumberType:
		return encodeNumber(v, w, es)
	case jsontree.StringType:
		return encodeString(v, w, es)
	case jsontree.ArrayType:
		return encodeArray(v, w, es)
	case jsontree.ObjectType:
		return encodeObject(v, w, es)
	default:
		panic("type")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	if es.col == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeSep(w io.Writer, es *EncState, t jsontree.Type, sep string) error {
	es.col += len(sep)
	sep = applyColor(es, t, SepColor, sep)
	return writeString(w, sep)
}

func applyColor(es *EncState, t jsontree.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encodeNull(w io.Writer, es *EncState) error {
	es.col += 4
	return writeString(w, applyColor(es, jsontree.NullType, ValueColor, "null"))
}

func encodeBool(v *jsontree.Value, w io.Writer, es *EncState) error {
	s := strconv.FormatBool(v.Bool)
	es.col += len(s)
	return writeString(w, applyColor(es, jsontree.BoolType, ValueColor, s))
}

func encodeNumber(v *jsontree.Value, w io.Writer, es *EncState) error {
	s := formatNumber(v.Num, es.precision)
	es.col += len(s)
	return writeString(w, applyColor(es, jsontree.NumberType, ValueColor, s))
}

// formatNumber renders integral values without a fraction or exponent
// when they fit in an int64, and everything else in %g form. NaN and
// the infinities take their strconv spellings.
func formatNumber(f float64, precision int) string {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', precision, 64)
}

func encodeString(v *jsontree.Value, w io.Writer, es *EncState) error {
	q := Quote(v.Str)
	es.col += len(q)
	return writeString(w, applyColor(es, jsontree.StringType, ValueColor, q))
}

// Quote returns s as a JSON string literal. The two-character escapes
// cover the usual set, other non-printable bytes (below 0x20, and DEL)
// become \u00XX, and everything else passes through byte for byte.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if b < 0x20 || b == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, b)
			} else {
				sb.WriteByte(b)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func encodeArray(v *jsontree.Value, w io.Writer, es *EncState) error {
	if len(v.Arr) == 0 {
		return writeSep(w, es, jsontree.ArrayType, "[]")
	}
	if err := writeSep(w, es, jsontree.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, e := range v.Arr {
		if i > 0 {
			if err := writeSep(w, es, jsontree.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(e, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, jsontree.ArrayType, "]")
}

func encodeObject(v *jsontree.Value, w io.Writer, es *EncState) error {
	keys := v.Keys()
	if len(keys) == 0 {
		return writeSep(w, es, jsontree.ObjectType, "{}")
	}
	if err := writeSep(w, es, jsontree.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, k := range keys {
		if i > 0 {
			if err := writeSep(w, es, jsontree.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, k); err != nil {
			return err
		}
		if err := encode(v.Obj[k], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, jsontree.ObjectType, "}")
}

func writeField(w io.Writer, es *EncState, k string) error {
	q := Quote(k)
	es.col += len(q) + 1
	q = applyColor(es, jsontree.ObjectType, FieldColor, q)
	sep := applyColor(es, jsontree.ObjectType, SepColor, ":")
	if err := writeString(w, q+sep); err != nil {
		return err
	}
	if es.pretty {
		es.col++
		return writeString(w, " ")
	}
	return nil
}
