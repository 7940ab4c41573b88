package jsontree

import (
	"fmt"
	"maps"
	"slices"
)

// Value is a JSON document node. The active variant is named by Type;
// the other fields are meaningful only for their own variant. Object
// entries iterate and serialize in key order.
type Value struct {
	Type Type
	Bool bool
	Num  float64
	Str  string
	Arr  []*Value
	Obj  map[string]*Value
}

// Null returns a new null value. The zero Value is also null.
func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

// FromNumber returns a number value. All numbers are float64; integers
// beyond the float's exact-integer range lose precision.
func FromNumber(f float64) *Value {
	return &Value{Type: NumberType, Num: f}
}

func FromInt(i int64) *Value {
	return FromNumber(float64(i))
}

func FromString(s string) *Value {
	return &Value{Type: StringType, Str: s}
}

// FromSlice returns an array value owning elts.
func FromSlice(elts []*Value) *Value {
	return &Value{Type: ArrayType, Arr: elts}
}

// FromMap returns an object value owning entries.
func FromMap(entries map[string]*Value) *Value {
	return &Value{Type: ObjectType, Obj: entries}
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	res := &Value{Type: v.Type, Bool: v.Bool, Num: v.Num, Str: v.Str}
	switch v.Type {
	case ArrayType:
		res.Arr = make([]*Value, len(v.Arr))
		for i, e := range v.Arr {
			res.Arr[i] = e.Clone()
		}
	case ObjectType:
		res.Obj = make(map[string]*Value, len(v.Obj))
		for k, e := range v.Obj {
			res.Obj[k] = e.Clone()
		}
	}
	return res
}

// Keys returns the sorted keys of an object, and nil for any other
// type.
func (v *Value) Keys() []string {
	if v.Type != ObjectType {
		return nil
	}
	return slices.Sorted(maps.Keys(v.Obj))
}

// Index returns the i'th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v.Type != ArrayType {
		return nil, fmt.Errorf("%w: indexing %s as array", ErrType, v.Type)
	}
	if i < 0 || i >= len(v.Arr) {
		return nil, fmt.Errorf("%w: %d with length %d", ErrRange, i, len(v.Arr))
	}
	return v.Arr[i], nil
}

// Key returns the value under k in an object.
func (v *Value) Key(k string) (*Value, error) {
	if v.Type != ObjectType {
		return nil, fmt.Errorf("%w: keying %s as object", ErrType, v.Type)
	}
	e, ok := v.Obj[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKey, k)
	}
	return e, nil
}

// asArray coerces a null value to an empty array. Any other non-array
// variant is a contract violation.
func (v *Value) asArray() error {
	switch v.Type {
	case ArrayType:
		return nil
	case NullType:
		v.Type = ArrayType
		return nil
	default:
		return fmt.Errorf("%w: using %s as array", ErrType, v.Type)
	}
}

// asObject coerces a null value to an empty object.
func (v *Value) asObject() error {
	switch v.Type {
	case ObjectType:
	case NullType:
		v.Type = ObjectType
	default:
		return fmt.Errorf("%w: using %s as object", ErrType, v.Type)
	}
	if v.Obj == nil {
		v.Obj = map[string]*Value{}
	}
	return nil
}

func (v *Value) grow(n int) {
	for len(v.Arr) < n {
		v.Arr = append(v.Arr, Null())
	}
}

// Elem returns the i'th element of an array, coercing null to an array
// and extending with fresh nulls as needed.
func (v *Value) Elem(i int) (*Value, error) {
	if err := v.asArray(); err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrRange, i)
	}
	v.grow(i + 1)
	return v.Arr[i], nil
}

// Field returns the value under k in an object, coercing null to an
// object and creating a null entry when k is absent.
func (v *Value) Field(k string) (*Value, error) {
	if err := v.asObject(); err != nil {
		return nil, err
	}
	e, ok := v.Obj[k]
	if !ok {
		e = Null()
		v.Obj[k] = e
	}
	return e, nil
}

// SetIndex stores e at index i, growing the array as needed. The tree
// owns e after the call.
func (v *Value) SetIndex(i int, e *Value) error {
	if err := v.asArray(); err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrRange, i)
	}
	v.grow(i + 1)
	v.Arr[i] = e
	return nil
}

// Set stores e under k. The tree owns e after the call.
func (v *Value) Set(k string, e *Value) error {
	if err := v.asObject(); err != nil {
		return err
	}
	v.Obj[k] = e
	return nil
}

func (v *Value) Append(e *Value) error {
	if err := v.asArray(); err != nil {
		return err
	}
	v.Arr = append(v.Arr, e)
	return nil
}

func (v *Value) Prepend(e *Value) error {
	return v.Insert(0, e)
}

// Insert places e before index i.
func (v *Value) Insert(i int, e *Value) error {
	if err := v.asArray(); err != nil {
		return err
	}
	if i < 0 || i > len(v.Arr) {
		return fmt.Errorf("%w: %d with length %d", ErrRange, i, len(v.Arr))
	}
	v.Arr = slices.Insert(v.Arr, i, e)
	return nil
}

// Pop removes the last element of an array.
func (v *Value) Pop() error {
	if err := v.asArray(); err != nil {
		return err
	}
	if len(v.Arr) == 0 {
		return fmt.Errorf("%w: pop of empty array", ErrRange)
	}
	v.Arr = v.Arr[:len(v.Arr)-1]
	return nil
}

// Remove deletes the element at index i.
func (v *Value) Remove(i int) error {
	if v.Type != ArrayType {
		return fmt.Errorf("%w: removing index from %s", ErrType, v.Type)
	}
	if i < 0 || i >= len(v.Arr) {
		return fmt.Errorf("%w: %d with length %d", ErrRange, i, len(v.Arr))
	}
	v.Arr = slices.Delete(v.Arr, i, i+1)
	return nil
}

// Delete removes the entry under k. Deleting an absent key is a no-op.
func (v *Value) Delete(k string) error {
	if v.Type != ObjectType {
		return fmt.Errorf("%w: deleting key from %s", ErrType, v.Type)
	}
	delete(v.Obj, k)
	return nil
}

// Contains reports whether v is an object with an entry under k.
func (v *Value) Contains(k string) bool {
	if v.Type != ObjectType {
		return false
	}
	_, ok := v.Obj[k]
	return ok
}

// At returns the entry under k, or def when v is not an object or has
// no such entry.
func (v *Value) At(k string, def *Value) *Value {
	if v.Type != ObjectType {
		return def
	}
	if e, ok := v.Obj[k]; ok {
		return e
	}
	return def
}

// Len returns the element count of an array or object, the byte length
// of a string, and 0 otherwise.
func (v *Value) Len() int {
	switch v.Type {
	case ArrayType:
		return len(v.Arr)
	case ObjectType:
		return len(v.Obj)
	case StringType:
		return len(v.Str)
	default:
		return 0
	}
}

// Empty reports whether v is null, or a container or string of length
// zero.
func (v *Value) Empty() bool {
	switch v.Type {
	case NullType:
		return true
	case ArrayType, ObjectType, StringType:
		return v.Len() == 0
	default:
		return false
	}
}

// Clear empties a container in place and resets any other variant to
// null.
func (v *Value) Clear() {
	switch v.Type {
	case ArrayType:
		v.Arr = nil
	case ObjectType:
		clear(v.Obj)
	default:
		*v = Value{}
	}
}

// BoolOr returns the boolean value, or def when v is not a bool.
func (v *Value) BoolOr(def bool) bool {
	if v.Type != BoolType {
		return def
	}
	return v.Bool
}

func (v *Value) NumberOr(def float64) float64 {
	if v.Type != NumberType {
		return def
	}
	return v.Num
}

// IntOr returns the number truncated toward zero, or def when v is not
// a number.
func (v *Value) IntOr(def int64) int64 {
	if v.Type != NumberType {
		return def
	}
	return int64(v.Num)
}

func (v *Value) StringOr(def string) string {
	if v.Type != StringType {
		return def
	}
	return v.Str
}

// Visit walks v in document order, calling f before and after each
// node's children. Returning false from the pre-order call skips the
// children.
func (v *Value) Visit(f func(v *Value, post bool) (bool, error)) error {
	descend, err := f(v, false)
	if err != nil {
		return err
	}
	if descend {
		switch v.Type {
		case ArrayType:
			for _, e := range v.Arr {
				if err := e.Visit(f); err != nil {
					return err
				}
			}
		case ObjectType:
			for _, k := range v.Keys() {
				if err := v.Obj[k].Visit(f); err != nil {
					return err
				}
			}
		}
	}
	_, err = f(v, true)
	return err
}
