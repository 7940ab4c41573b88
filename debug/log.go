package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/doctree/doctree/jsontree"
	"github.com/doctree/doctree/jsontree/encode"
)

// Logf writes a formatted message to stderr, rendering *jsontree.Value
// arguments as JSON text first.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *jsontree.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw value] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
