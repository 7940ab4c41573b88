// Package xmltree provides a mutable XML document tree.
//
// # Overview
//
// A Node has a name, character content, attributes and ordered child
// nodes. Text runs inside an element concatenate into one Text field
// in encounter order; where text sat relative to child elements is not
// preserved. Attributes are unique by key and serialize in sorted key
// order.
//
// # Building Documents
//
// Constructors chain, so documents build inline:
//
//	n := xmltree.New("user").
//	    SetAttr("id", "7").
//	    AddChild(xmltree.New("name").SetText("alice")).
//	    AddChild(xmltree.New("active").SetText("true"))
//
// # Reading
//
// Child and ChildrenNamed address children by element name,
// EnsureChild creates on first use, and AsInt, AsFloat and AsBool read
// the text content with a fallback default.
//
// # Thread Safety
//
// Nodes are plain data with no internal locking. Share them across
// goroutines only while read-only.
//
// # Related Packages
//
//   - github.com/doctree/doctree/xmltree/parse - XML text to nodes
//   - github.com/doctree/doctree/xmltree/encode - nodes to XML text
package xmltree
