package patch

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

func TestApply(t *testing.T) {
	tests := []struct {
		doc, patch, want string
	}{
		{
			doc:   `{"a":1,"b":[1,2]}`,
			patch: `[{"op":"replace","path":"/a","value":2}]`,
			want:  `{"a":2,"b":[1,2]}`,
		},
		{
			doc:   `{"a":1}`,
			patch: `[{"op":"add","path":"/c","value":{"d":true}}]`,
			want:  `{"a":1,"c":{"d":true}}`,
		},
		{
			doc:   `{"a":1,"b":2}`,
			patch: `[{"op":"remove","path":"/b"}]`,
			want:  `{"a":1}`,
		},
		{
			doc:   `{"a":[1,2,3]}`,
			patch: `[{"op":"add","path":"/a/1","value":9},{"op":"remove","path":"/a/0"}]`,
			want:  `{"a":[9,2,3]}`,
		},
	}
	for _, tc := range tests {
		doc := mustParse(t, tc.doc)
		snapshot := doc.Clone()
		got, err := Apply(doc, mustParse(t, tc.patch))
		if err != nil {
			t.Errorf("%s + %s: %v", tc.doc, tc.patch, err)
			continue
		}
		if want := mustParse(t, tc.want); !jsontree.Equal(got, want) {
			t.Errorf("%s + %s: wrong result", tc.doc, tc.patch)
		}
		if !jsontree.Equal(doc, snapshot) {
			t.Errorf("%s + %s: input mutated", tc.doc, tc.patch)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	if _, err := Apply(doc, mustParse(t, `{"op":"remove"}`)); !errors.Is(err, jsontree.ErrType) {
		t.Errorf("non-array patch: got %v, want ErrType", err)
	}
	if _, err := Apply(doc, mustParse(t, `[{"op":"replace","path":"/zz","value":1}]`)); err == nil {
		t.Error("replace of missing path succeeded")
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2,"o":{"x":1,"y":2}}`)
	mp := mustParse(t, `{"b":null,"c":3,"o":{"y":null}}`)
	got, err := MergePatch(doc, mp)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":1,"c":3,"o":{"x":1}}`)
	if !jsontree.Equal(got, want) {
		t.Fatal("merge patch wrong result")
	}
}

func TestDiffRoundTrip(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":{"x":true},"gone":0}`)
	to := mustParse(t, `{"a":2,"b":{"x":true,"y":false}}`)
	d, err := Diff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	back, err := MergePatch(from, d)
	if err != nil {
		t.Fatal(err)
	}
	if !jsontree.Equal(back, to) {
		t.Fatal("applying the diff did not reproduce the target")
	}
}
