// Package eval runs expressions against jsontree documents using
// expr-lang.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/doctree/doctree/debug"
	"github.com/doctree/doctree/jsontree"
)

// Env is the variable environment an expression runs against.
type Env map[string]any

// EnvOf exposes the entries of an object document as expression
// variables.
func EnvOf(doc *jsontree.Value) (Env, error) {
	if doc.Type != jsontree.ObjectType {
		return nil, fmt.Errorf("%w: environment is %s, want object",
			jsontree.ErrType, doc.Type)
	}
	return Env(jsontree.ToAny(doc).(map[string]any)), nil
}

// Eval compiles input and runs it with doc's entries in scope. The
// result comes back as a value, so expressions can build arrays and
// objects as well as scalars.
func Eval(input string, doc *jsontree.Value) (*jsontree.Value, error) {
	env, err := EnvOf(doc)
	if err != nil {
		return nil, err
	}
	program, err := expr.Compile(input)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	out, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %v -> %v\n", input, doc, out)
	}
	return jsontree.FromAny(out)
}

// Filter returns a new array holding the elements of doc for which
// input is true. The element is bound as v and its index as i.
func Filter(input string, doc *jsontree.Value) (*jsontree.Value, error) {
	if doc.Type != jsontree.ArrayType {
		return nil, fmt.Errorf("%w: filter over %s, want array",
			jsontree.ErrType, doc.Type)
	}
	program, err := expr.Compile(input)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	res := jsontree.FromSlice(nil)
	for i, e := range doc.Arr {
		out, err := vm.Run(program, map[string]any{"v": jsontree.ToAny(e), "i": i})
		if err != nil {
			return nil, fmt.Errorf("error evaluating %q: %w", input, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: filter expression yields %T, want bool",
				jsontree.ErrType, out)
		}
		if keep {
			res.Arr = append(res.Arr, e.Clone())
		}
	}
	if debug.Eval() {
		debug.Logf("filter %q kept %d of %d\n", input, len(res.Arr), len(doc.Arr))
	}
	return res, nil
}
