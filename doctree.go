// Package doctree ties the document engines together at the byte
// boundary: callers pick a format, the engines do the rest. The engines
// themselves live in jsontree and xmltree with their parse and encode
// subpackages; use those directly for options beyond pretty printing.
package doctree

import (
	"bytes"
	"fmt"

	"github.com/doctree/doctree/format"
	"github.com/doctree/doctree/jsontree"
	jsonencode "github.com/doctree/doctree/jsontree/encode"
	jsonparse "github.com/doctree/doctree/jsontree/parse"
	"github.com/doctree/doctree/jsontree/yamlconv"
	"github.com/doctree/doctree/xmltree"
	xmlencode "github.com/doctree/doctree/xmltree/encode"
	xmlparse "github.com/doctree/doctree/xmltree/parse"
)

// ParseValue decodes d, in the given format, into a Value. XML
// documents have their own model; use ParseNode for those.
func ParseValue(f format.Format, d []byte) (*jsontree.Value, error) {
	switch f {
	case format.JSONFormat:
		return jsonparse.Parse(d)
	case format.YAMLFormat:
		return yamlconv.FromYAML(d)
	default:
		return nil, fmt.Errorf("%w: no value model for %s", format.ErrBadFormat, f)
	}
}

// DumpValue renders v in the given format. The pretty flag selects
// indented JSON output; YAML output is always indented.
func DumpValue(f format.Format, v *jsontree.Value, pretty bool) ([]byte, error) {
	switch f {
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		if err := jsonencode.Encode(v, buf, jsonencode.Pretty(pretty)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case format.YAMLFormat:
		return yamlconv.ToYAML(v)
	default:
		return nil, fmt.Errorf("%w: no value model for %s", format.ErrBadFormat, f)
	}
}

// ParseNode decodes d as an XML document.
func ParseNode(d []byte) (*xmltree.Node, error) {
	return xmlparse.Parse(d)
}

// DumpNode renders n as XML.
func DumpNode(n *xmltree.Node, pretty bool) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := xmlencode.Encode(n, buf, xmlencode.Pretty(pretty)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
