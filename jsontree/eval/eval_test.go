package eval

import (
	"errors"
	"testing"

	"github.com/doctree/doctree/jsontree"
	"github.com/doctree/doctree/jsontree/parse"
)

func mustParse(t *testing.T, in string) *jsontree.Value {
	t.Helper()
	v, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("%s: %v", in, err)
	}
	return v
}

func TestEval(t *testing.T) {
	doc := mustParse(t, `{
		"a": 2,
		"b": 3,
		"name": "alice",
		"on": true,
		"o": {"x": 10},
		"nums": [1, 2, 3]
	}`)
	tests := []struct {
		in   string
		want *jsontree.Value
	}{
		{in: `a + b`, want: jsontree.FromNumber(5)},
		{in: `a < b`, want: jsontree.FromBool(true)},
		{in: `on && b > a`, want: jsontree.FromBool(true)},
		{in: `name + "!"`, want: jsontree.FromString("alice!")},
		{in: `o.x * 2`, want: jsontree.FromNumber(20)},
		{in: `nums[1]`, want: jsontree.FromNumber(2)},
		{in: `len(nums)`, want: jsontree.FromNumber(3)},
		{
			in: `{"sum": a + b}`,
			want: jsontree.FromMap(map[string]*jsontree.Value{
				"sum": jsontree.FromNumber(5),
			}),
		},
	}
	for _, tc := range tests {
		got, err := Eval(tc.in, doc)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if !jsontree.Equal(got, tc.want) {
			t.Errorf("%s: wrong result %v", tc.in, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := Eval(`1`, jsontree.FromSlice(nil)); !errors.Is(err, jsontree.ErrType) {
		t.Errorf("array env: got %v, want ErrType", err)
	}
	doc := mustParse(t, `{"a": 1}`)
	if _, err := Eval(`a +`, doc); err == nil {
		t.Error("bad syntax compiled")
	}
	if _, err := Eval(`missing + 1`, doc); err == nil {
		t.Error("undefined variable evaluated")
	}
}

func TestFilter(t *testing.T) {
	doc := mustParse(t, `[1, 2, 3, 4]`)
	got, err := Filter(`v > 2`, doc)
	if err != nil {
		t.Fatal(err)
	}
	if !jsontree.Equal(got, mustParse(t, `[3, 4]`)) {
		t.Fatal("wrong elements kept")
	}
	if doc.Len() != 4 {
		t.Fatal("filter mutated the input")
	}
}

func TestFilterObjects(t *testing.T) {
	doc := mustParse(t, `[
		{"name": "a", "on": true},
		{"name": "b", "on": false},
		{"name": "c", "on": true}
	]`)
	got, err := Filter(`v.on`, doc)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("kept %d, want 2", got.Len())
	}
	byIndex, err := Filter(`i % 2 == 0`, doc)
	if err != nil {
		t.Fatal(err)
	}
	if byIndex.Len() != 2 {
		t.Fatalf("kept %d by index, want 2", byIndex.Len())
	}
}

func TestFilterErrors(t *testing.T) {
	if _, err := Filter(`true`, jsontree.FromMap(nil)); !errors.Is(err, jsontree.ErrType) {
		t.Errorf("object doc: got %v, want ErrType", err)
	}
	doc := mustParse(t, `[1]`)
	if _, err := Filter(`v + 1`, doc); !errors.Is(err, jsontree.ErrType) {
		t.Errorf("non-bool expression: got %v, want ErrType", err)
	}
}
