// Package patch applies RFC 6902 patches and RFC 7386 merge patches
// to jsontree values.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/doctree/doctree/debug"
	"github.com/doctree/doctree/jsontree"
	"github.com/doctree/doctree/jsontree/encode"
	"github.com/doctree/doctree/jsontree/parse"
)

// Apply applies an RFC 6902 patch document to doc and returns the
// patched value. Neither argument is modified.
func Apply(doc, patchDoc *jsontree.Value) (*jsontree.Value, error) {
	if patchDoc.Type != jsontree.ArrayType {
		return nil, fmt.Errorf("%w: patch document is %s, want array",
			jsontree.ErrType, patchDoc.Type)
	}
	ops, err := jsonpatch.DecodePatch([]byte(encode.MustString(patchDoc)))
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %v on %v\n", patchDoc, doc)
	}
	out, err := ops.Apply([]byte(encode.MustString(doc)))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc. Object entries in
// patchDoc replace those of doc, null entries delete them.
func MergePatch(doc, patchDoc *jsontree.Value) (*jsontree.Value, error) {
	if debug.Merge() {
		debug.Logf("merge patch %v on %v\n", patchDoc, doc)
	}
	out, err := jsonpatch.MergePatch(
		[]byte(encode.MustString(doc)),
		[]byte(encode.MustString(patchDoc)))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// Diff returns the RFC 7386 merge patch that turns from into to, so
// MergePatch(from, Diff(from, to)) equals to.
func Diff(from, to *jsontree.Value) (*jsontree.Value, error) {
	d, err := jsonpatch.CreateMergePatch(
		[]byte(encode.MustString(from)),
		[]byte(encode.MustString(to)))
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}
