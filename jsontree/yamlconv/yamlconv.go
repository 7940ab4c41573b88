// Package yamlconv converts between YAML text and jsontree values.
package yamlconv

import (
	"github.com/goccy/go-yaml"

	"github.com/doctree/doctree/jsontree"
)

// FromYAML parses one YAML document into a value. Anchors, aliases and
// merge keys resolve during decoding, so the result is plain data.
func FromYAML(d []byte) (*jsontree.Value, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return jsontree.FromAny(v)
}

// ToYAML renders a value as YAML text.
func ToYAML(v *jsontree.Value) ([]byte, error) {
	return yaml.Marshal(jsontree.ToAny(v))
}
