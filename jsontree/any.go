package jsontree

import "fmt"

// FromAny converts plain Go data into a value: nil, bool, numeric and
// string scalars, []any, map[string]any and map[any]any with string
// keys (the shapes generic decoders produce). Arguments that already
// are values are deep-copied.
func FromAny(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(float64(x)), nil
	case int:
		return FromNumber(float64(x)), nil
	case int8:
		return FromNumber(float64(x)), nil
	case int16:
		return FromNumber(float64(x)), nil
	case int32:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case uint:
		return FromNumber(float64(x)), nil
	case uint8:
		return FromNumber(float64(x)), nil
	case uint16:
		return FromNumber(float64(x)), nil
	case uint32:
		return FromNumber(float64(x)), nil
	case uint64:
		return FromNumber(float64(x)), nil
	case []any:
		arr := make([]*Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			arr[i] = ev
		}
		return FromSlice(arr), nil
	case []*Value:
		arr := make([]*Value, len(x))
		for i, e := range x {
			arr[i] = e.Clone()
		}
		return FromSlice(arr), nil
	case map[string]any:
		obj := make(map[string]*Value, len(x))
		for k, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			obj[k] = ev
		}
		return FromMap(obj), nil
	case map[string]*Value:
		obj := make(map[string]*Value, len(x))
		for k, e := range x {
			obj[k] = e.Clone()
		}
		return FromMap(obj), nil
	case map[any]any:
		obj := make(map[string]*Value, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string map key %v (%T)", ErrType, k, k)
			}
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			obj[ks] = ev
		}
		return FromMap(obj), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrType, v)
	}
}

// ToAny converts v into plain Go data: nil, bool, float64, string,
// []any and map[string]any.
func ToAny(v *Value) any {
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Num
	case StringType:
		return v.Str
	case ArrayType:
		res := make([]any, len(v.Arr))
		for i, e := range v.Arr {
			res[i] = ToAny(e)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.Obj))
		for k, e := range v.Obj {
			res[k] = ToAny(e)
		}
		return res
	default:
		panic("type")
	}
}
