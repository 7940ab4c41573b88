// Package encode writes xmltree nodes as XML text.
//
// # Usage
//
//	n := xmltree.New("user").
//	    SetAttr("id", "101").
//	    AddChild(xmltree.New("name").SetText("alice"))
//	err := encode.Encode(n, os.Stdout, encode.Pretty(true))
//
// # Related Packages
//
//   - github.com/doctree/doctree/xmltree - the document model
//   - github.com/doctree/doctree/xmltree/parse - XML text to nodes
package encode
