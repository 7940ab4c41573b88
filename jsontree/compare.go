package jsontree

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values. The result is 0 if
// a == b, -1 if a < b, and +1 if a > b. Values order by type rank
// first (null < bool < number < string < array < object), then by
// value; arrays compare lexicographically, objects by sorted key and
// then per-key value.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return cmp.Compare(a.Num, b.Num)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	default:
		panic("type")
	}
}

// Equal reports structural equality of a and b.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	default:
		return 100
	}
}

func compareArrays(a, b *Value) int {
	n := min(len(a.Arr), len(b.Arr))
	for i := 0; i < n; i++ {
		if c := Compare(a.Arr[i], b.Arr[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Arr), len(b.Arr))
}

func compareObjects(a, b *Value) int {
	ka, kb := a.Keys(), b.Keys()
	n := min(len(ka), len(kb))
	for i := 0; i < n; i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.Obj[ka[i]], b.Obj[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}
