// Package encode writes jsontree values as JSON text.
//
// # Usage
//
//	v := jsontree.FromMap(map[string]*jsontree.Value{
//	    "name": jsontree.FromString("alice"),
//	    "age":  jsontree.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout, encode.Pretty(true))
//
//	// Colorize when stdout is a terminal.
//	err = encode.Encode(v, os.Stdout,
//	    encode.EncodeColors(encode.AutoColors(os.Stdout)))
//
// # Related Packages
//
//   - github.com/doctree/doctree/jsontree - the value model
//   - github.com/doctree/doctree/jsontree/parse - JSON text to values
package encode
