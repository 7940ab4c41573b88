package jsontree

import "strconv"

// Flatten returns a single-level object whose keys encode the path of
// each primitive leaf in v, joining object steps with sep and writing
// array steps as [i]. Empty containers contribute no entries;
// flattening a leaf yields an object with the empty key. The entries
// are deep copies.
func (v *Value) Flatten(sep string) *Value {
	out := FromMap(map[string]*Value{})
	v.flattenInto("", sep, out.Obj)
	return out
}

func (v *Value) flattenInto(prefix, sep string, out map[string]*Value) {
	switch v.Type {
	case ObjectType:
		for _, k := range v.Keys() {
			key := k
			if prefix != "" {
				key = prefix + sep + k
			}
			v.Obj[k].flattenInto(key, sep, out)
		}
	case ArrayType:
		for i, e := range v.Arr {
			e.flattenInto(prefix+"["+strconv.Itoa(i)+"]", sep, out)
		}
	default:
		out[prefix] = v.Clone()
	}
}
