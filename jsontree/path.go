package jsontree

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is one parsed segment of a dotted path such as "a.b[2].c",
// linked to the segments after it. Exactly one of Field and Index is
// set.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

// ParsePath parses a dotted path. A field segment is any run of
// characters other than '.' and '['; an index segment is a bracketed
// run of decimal digits. The empty path is valid and addresses the
// value itself.
func ParsePath(path string) (*Path, error) {
	if path == "" {
		return nil, nil
	}
	return parseFrag(path, 0)
}

func parseFrag(path string, i int) (*Path, error) {
	for i < len(path) && path[i] == '.' {
		i++
	}
	if i == len(path) {
		return nil, nil
	}
	if path[i] == '[' {
		j := strings.IndexByte(path[i:], ']')
		if j < 0 {
			return nil, fmt.Errorf("%w: unterminated '[' at %d in %q", ErrPath, i, path)
		}
		lit := path[i+1 : i+j]
		if !allDigits(lit) {
			return nil, fmt.Errorf("%w: bad array index %q in %q", ErrPath, lit, path)
		}
		idx, err := strconv.Atoi(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: bad array index %q in %q", ErrPath, lit, path)
		}
		next, err := parseFrag(path, i+j+1)
		if err != nil {
			return nil, err
		}
		return &Path{Index: &idx, Next: next}, nil
	}
	j := i
	for j < len(path) && path[j] != '.' && path[j] != '[' {
		j++
	}
	f := path[i:j]
	next, err := parseFrag(path, j)
	if err != nil {
		return nil, err
	}
	return &Path{Field: &f, Next: next}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p *Path) String() string {
	var b strings.Builder
	for ; p != nil; p = p.Next {
		if p.Field != nil {
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(*p.Field)
			continue
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(*p.Index))
		b.WriteByte(']')
	}
	return b.String()
}

// AtPath reads the value at path. Absent or type-mismatched steps
// yield a fresh null value rather than an error; only malformed path
// syntax fails. When the path resolves, the returned value is the live
// subtree.
func (v *Value) AtPath(path string) (*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := v
	for ; p != nil; p = p.Next {
		switch {
		case p.Field != nil:
			if cur.Type != ObjectType {
				return Null(), nil
			}
			e, ok := cur.Obj[*p.Field]
			if !ok {
				return Null(), nil
			}
			cur = e
		default:
			if cur.Type != ArrayType || *p.Index >= len(cur.Arr) {
				return Null(), nil
			}
			cur = cur.Arr[*p.Index]
		}
	}
	return cur, nil
}

// SetPath stores e at path, creating or extending intermediate objects
// and arrays as each segment requires. Intermediate values that are
// neither null nor the required container type fail the write;
// vivifications performed before the failing step remain in place.
func (v *Value) SetPath(path string, e *Value) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: empty path", ErrPath)
	}
	cur := v
	for ; p.Next != nil; p = p.Next {
		if p.Field != nil {
			cur, err = cur.Field(*p.Field)
		} else {
			cur, err = cur.Elem(*p.Index)
		}
		if err != nil {
			return err
		}
	}
	if p.Field != nil {
		return cur.Set(*p.Field, e)
	}
	return cur.SetIndex(*p.Index, e)
}

// HasPath reports whether path resolves to a non-null value. Malformed
// paths report false.
func (v *Value) HasPath(path string) bool {
	e, err := v.AtPath(path)
	return err == nil && e.Type != NullType
}
