package xmltree

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Node is one XML element.
type Node struct {
	Name     string
	Text     string
	Attrs    map[string]string
	Children []*Node
}

func New(name string) *Node {
	return &Node{Name: name}
}

// SetText replaces the character content and returns n.
func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

// SetAttr sets an attribute and returns n.
func (n *Node) SetAttr(k, v string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[k] = v
	return n
}

// RemoveAttr deletes an attribute and returns n. Absent keys are a
// no-op.
func (n *Node) RemoveAttr(k string) *Node {
	delete(n.Attrs, k)
	return n
}

// AddChild appends c and returns n.
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

func (n *Node) HasAttr(k string) bool {
	_, ok := n.Attrs[k]
	return ok
}

func (n *Node) Attr(k string) (string, bool) {
	v, ok := n.Attrs[k]
	return v, ok
}

func (n *Node) AttrOr(k, def string) string {
	if v, ok := n.Attrs[k]; ok {
		return v
	}
	return def
}

// AttrNames returns the attribute keys in sorted order.
func (n *Node) AttrNames() []string {
	if len(n.Attrs) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n.Attrs))
}

// Child returns the first child named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// EnsureChild returns the first child named name, appending a fresh
// one when none exists.
func (n *Node) EnsureChild(name string) *Node {
	if c := n.Child(name); c != nil {
		return c
	}
	c := New(name)
	n.AddChild(c)
	return c
}

// ChildrenNamed returns all children named name in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Len returns the child count.
func (n *Node) Len() int {
	return len(n.Children)
}

// Empty reports whether n has neither text nor children. Attributes
// do not count; an empty node serializes self-closing.
func (n *Node) Empty() bool {
	return n.Text == "" && len(n.Children) == 0
}

// Clear drops text, attributes and children, keeping the name.
func (n *Node) Clear() {
	n.Text = ""
	n.Attrs = nil
	n.Children = nil
}

// AsInt returns the text parsed as an integer, or def.
func (n *Node) AsInt(def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(n.Text), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// AsFloat returns the text parsed as a float, or def.
func (n *Node) AsFloat(def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.Text), 64)
	if err != nil {
		return def
	}
	return v
}

// AsBool returns the text parsed by strconv.ParseBool, or def.
func (n *Node) AsBool(def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(n.Text))
	if err != nil {
		return def
	}
	return v
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{Name: n.Name, Text: n.Text}
	if n.Attrs != nil {
		res.Attrs = maps.Clone(n.Attrs)
	}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Equal reports whether a and b have the same name, text, attributes
// and recursively equal children in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || a.Text != b.Text {
		return false
	}
	if !maps.Equal(a.Attrs, b.Attrs) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
