package jsontree

import "fmt"

// Iter iterates the elements of an array or the entries of an object
// in key order. Obtain one from Value.Iter, then advance with Next:
//
//	it, err := v.Iter()
//	for it.Next() {
//	    use(it.Key(), it.Value())
//	}
type Iter struct {
	v    *Value
	keys []string
	i    int
}

// Iter returns an iterator over v's elements. Iterating a leaf value
// is a contract violation.
func (v *Value) Iter() (*Iter, error) {
	switch v.Type {
	case ArrayType:
		return &Iter{v: v, i: -1}, nil
	case ObjectType:
		return &Iter{v: v, keys: v.Keys(), i: -1}, nil
	default:
		return nil, fmt.Errorf("%w: iterating %s", ErrType, v.Type)
	}
}

// Next advances the iterator and reports whether a value is available.
func (it *Iter) Next() bool {
	it.i++
	if it.v.Type == ArrayType {
		return it.i < len(it.v.Arr)
	}
	return it.i < len(it.keys)
}

// Index returns the position of the current value.
func (it *Iter) Index() int {
	return it.i
}

// Key returns the key of the current value for objects, and "" for
// arrays.
func (it *Iter) Key() string {
	if it.v.Type != ObjectType {
		return ""
	}
	return it.keys[it.i]
}

// Value returns the current value.
func (it *Iter) Value() *Value {
	if it.v.Type == ArrayType {
		return it.v.Arr[it.i]
	}
	return it.v.Obj[it.keys[it.i]]
}
