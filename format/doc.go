// Package format names the document representations the module reads
// and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	name := "doc" + f.Suffix()
//
// # Related Packages
//
//   - github.com/doctree/doctree - parse and dump by format
package format
