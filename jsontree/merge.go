package jsontree

import "fmt"

// Merge copies the entries of other into v. Both must be objects;
// entries from other overwrite entries of v under the same key. The
// copied entries are deep copies, so later mutation of v never reaches
// through to other.
func (v *Value) Merge(other *Value) error {
	if v.Type != ObjectType {
		return fmt.Errorf("%w: merge into %s", ErrType, v.Type)
	}
	if other.Type != ObjectType {
		return fmt.Errorf("%w: merge from %s", ErrType, other.Type)
	}
	if v.Obj == nil {
		v.Obj = make(map[string]*Value, len(other.Obj))
	}
	for k, e := range other.Obj {
		v.Obj[k] = e.Clone()
	}
	return nil
}
