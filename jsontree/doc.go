// Package jsontree provides the JSON value model: a tree of Value
// nodes used by the parser, the encoder and the addressing layer.
//
// # Overview
//
// A Value is a closed variant over the six JSON shapes: null, bool,
// number, string, array and object. Exactly one variant is active at a
// time; the Type field names it and the other fields are meaningful
// only for their own variant. Numbers are float64, so integers beyond
// the float's exact-integer range lose precision.
//
// Object entries have unique keys and iterate, compare and serialize
// in key order rather than insertion order. Callers may rely on this
// for deterministic output.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := jsontree.FromString("hello")
//	num := jsontree.FromInt(42)
//	obj := jsontree.FromMap(map[string]*jsontree.Value{
//	    "key": jsontree.FromString("value"),
//	})
//	arr := jsontree.FromSlice([]*jsontree.Value{
//	    jsontree.FromInt(1),
//	    jsontree.FromInt(2),
//	})
//
// # Access and Mutation
//
// Strict accessors (Index, Key) fail on absent positions. Mutable
// accessors (Elem, Field, SetIndex, Set, Append, ...) follow the
// coerce-if-null rule: a null value becomes the needed container, an
// array grows to fit, an absent key is created — but a populated value
// of the wrong variant is a contract violation reported as ErrType,
// never silently reinterpreted.
//
// Values handed to mutators are owned by the tree afterwards; Merge
// and Flatten deep-copy instead because their source stays live.
//
// # Paths
//
// AtPath, SetPath and HasPath address nested positions with a small
// path language:
//
//	root.AtPath("users[0].name")
//	root.SetPath("a.b[1]", jsontree.FromBool(true))
//
// AtPath reads best-effort, returning null for absent or mismatched
// steps; SetPath creates intermediate containers as each segment
// requires.
//
// # Thread Safety
//
// Values are not thread-safe. Access from multiple goroutines needs
// external synchronization, or a Clone per goroutine.
//
// # Related Packages
//
//   - github.com/doctree/doctree/jsontree/parse - Parses text into values
//   - github.com/doctree/doctree/jsontree/encode - Encodes values to text
//   - github.com/doctree/doctree/jsontree/patch - Patch operations on values
package jsontree
