package encode

import (
	"bytes"

	"github.com/doctree/doctree/jsontree"
)

func MustString(v *jsontree.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
