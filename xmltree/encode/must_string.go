package encode

import (
	"bytes"

	"github.com/doctree/doctree/xmltree"
)

func MustString(n *xmltree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
