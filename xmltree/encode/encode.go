package encode

import (
	"io"
	"strings"

	"github.com/doctree/doctree/xmltree"
)

type EncState struct {
	depth  int
	indent int
	pretty bool

	Color func(ColorAttr, string) string
}

// Encode writes n to w as XML. Output is compact unless the Pretty
// option is given; pretty output terminates every element with a
// newline. Attributes are written double-quoted in sorted key order,
// and an element with no text and no children self-closes.
func Encode(n *xmltree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encodeNode(n, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

func (es *EncState) prefix() string {
	if !es.pretty {
		return ""
	}
	return strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
}

func (es *EncState) eol() string {
	if !es.pretty {
		return ""
	}
	return "\n"
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape substitutes the five standard entities, the inverse of the
// parser's decoding.
func Escape(s string) string {
	return escaper.Replace(s)
}

func encodeNode(n *xmltree.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.prefix()); err != nil {
		return err
	}
	if err := writeOpen(n, w, es); err != nil {
		return err
	}
	if n.Empty() {
		return writeString(w, applyColor(es, SepColor, " />")+es.eol())
	}
	if err := writeString(w, applyColor(es, SepColor, ">")); err != nil {
		return err
	}
	// Text-only elements stay on one line even when pretty.
	if n.Len() == 0 {
		if err := writeString(w, applyColor(es, TextColor, Escape(n.Text))); err != nil {
			return err
		}
		return writeClose(n, w, es)
	}
	if err := writeString(w, es.eol()); err != nil {
		return err
	}
	es.depth++
	if n.Text != "" {
		line := es.prefix() + applyColor(es, TextColor, Escape(n.Text)) + es.eol()
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeNode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeString(w, es.prefix()); err != nil {
		return err
	}
	return writeClose(n, w, es)
}

func writeOpen(n *xmltree.Node, w io.Writer, es *EncState) error {
	var sb strings.Builder
	sb.WriteString(applyColor(es, SepColor, "<"))
	sb.WriteString(applyColor(es, NameColor, n.Name))
	for _, k := range n.AttrNames() {
		sb.WriteString(" ")
		sb.WriteString(applyColor(es, AttrColor, k))
		sb.WriteString(applyColor(es, SepColor, `="`))
		sb.WriteString(applyColor(es, ValueColor, Escape(n.Attrs[k])))
		sb.WriteString(applyColor(es, SepColor, `"`))
	}
	return writeString(w, sb.String())
}

func writeClose(n *xmltree.Node, w io.Writer, es *EncState) error {
	s := applyColor(es, SepColor, "</") +
		applyColor(es, NameColor, n.Name) +
		applyColor(es, SepColor, ">")
	return writeString(w, s+es.eol())
}
