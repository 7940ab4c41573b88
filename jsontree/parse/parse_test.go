package parse

import (
	"errors"
	"testing"

	"github.com/doctree/doctree/jsontree"
	"github.com/doctree/doctree/scan"
)

func mustParse(t *testing.T, in string) *jsontree.Value {
	t.Helper()
	v, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("%q: %v", in, err)
	}
	return v
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *jsontree.Value
	}{
		{in: `null`, want: jsontree.Null()},
		{in: `true`, want: jsontree.FromBool(true)},
		{in: `false`, want: jsontree.FromBool(false)},
		{in: `0`, want: jsontree.FromNumber(0)},
		{in: `-0`, want: jsontree.FromNumber(0)},
		{in: `42`, want: jsontree.FromNumber(42)},
		{in: `-12.75`, want: jsontree.FromNumber(-12.75)},
		{in: `1e14`, want: jsontree.FromNumber(1e14)},
		{in: `2.5e-3`, want: jsontree.FromNumber(2.5e-3)},
		{in: `1E+2`, want: jsontree.FromNumber(100)},
		{in: `""`, want: jsontree.FromString("")},
		{in: `"hello"`, want: jsontree.FromString("hello")},
		{in: "  \t\r\n null \n", want: jsontree.Null()},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in)
		if !jsontree.Equal(got, tc.want) {
			t.Errorf("%q: parsed wrong value", tc.in)
		}
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"a\"b"`, want: `a"b`},
		{in: `"a\\b"`, want: `a\b`},
		{in: `"a\/b"`, want: "a/b"},
		{in: `"\b\f\n\r\t"`, want: "\b\f\n\r\t"},
		{in: `"\u0041"`, want: "A"},
		{in: `"\u00e9"`, want: "é"},
		{in: `"\u00E9"`, want: "é"},
		{in: `"\u2603"`, want: "☃"},
		{in: `"\uD83D\uDE00"`, want: "😀"},
		{in: `"héllo"`, want: "héllo"},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in)
		if got.Type != jsontree.StringType || got.Str != tc.want {
			t.Errorf("%s: got %q, want %q", tc.in, got.Str, tc.want)
		}
	}
}

func TestParseContainers(t *testing.T) {
	tests := []struct {
		in   string
		want *jsontree.Value
	}{
		{in: `[]`, want: jsontree.FromSlice(nil)},
		{in: `[ ]`, want: jsontree.FromSlice(nil)},
		{in: `{}`, want: jsontree.FromMap(nil)},
		{in: `{ }`, want: jsontree.FromMap(nil)},
		{
			in: `[1, "two", null]`,
			want: jsontree.FromSlice([]*jsontree.Value{
				jsontree.FromNumber(1),
				jsontree.FromString("two"),
				jsontree.Null(),
			}),
		},
		{
			in: `[[ [] ],[]]`,
			want: jsontree.FromSlice([]*jsontree.Value{
				jsontree.FromSlice([]*jsontree.Value{jsontree.FromSlice(nil)}),
				jsontree.FromSlice(nil),
			}),
		},
		{
			in: `{"a": [1,2], "f[0]": {"g": true}}`,
			want: jsontree.FromMap(map[string]*jsontree.Value{
				"a": jsontree.FromSlice([]*jsontree.Value{
					jsontree.FromNumber(1),
					jsontree.FromNumber(2),
				}),
				"f[0]": jsontree.FromMap(map[string]*jsontree.Value{
					"g": jsontree.FromBool(true),
				}),
			}),
		},
		{
			in: "{\n  \"a\"\t:\n1\n}",
			want: jsontree.FromMap(map[string]*jsontree.Value{
				"a": jsontree.FromNumber(1),
			}),
		},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in)
		if !jsontree.Equal(got, tc.want) {
			t.Errorf("%q: parsed wrong value", tc.in)
		}
	}
}

func TestParseDupKeys(t *testing.T) {
	v := mustParse(t, `{"k": 1, "j": 0, "k": 2}`)
	if v.Len() != 2 {
		t.Fatalf("object has %d entries, want 2", v.Len())
	}
	if got := v.Obj["k"].Num; got != 2 {
		t.Fatalf("k = %v, want last occurrence 2", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		e   error
		off int
	}{
		{in: ``, e: scan.ErrEOF, off: 0},
		{in: `  `, e: scan.ErrEOF, off: 2},
		{in: `tru`, off: 0},
		{in: `nul`, off: 0},
		{in: `falsey`, off: 5},
		{in: `01`, e: scan.ErrNumberLeadingZero, off: 0},
		{in: `1.`, e: scan.ErrNumber, off: 0},
		{in: `.5`, off: 0},
		{in: `1e`, e: scan.ErrNumber, off: 0},
		{in: `1e+`, e: scan.ErrNumber, off: 0},
		{in: `-`, e: scan.ErrNumber, off: 0},
		{in: `[01]`, e: scan.ErrNumberLeadingZero, off: 1},
		{in: `"abc`, e: scan.ErrUnterminated, off: 0},
		{in: `"a\x"`, e: scan.ErrBadEscape, off: 2},
		{in: `"\`, e: scan.ErrBadEscape, off: 1},
		{in: `"\u12G4"`, e: scan.ErrBadUnicode, off: 1},
		{in: `"\u00"`, e: scan.ErrBadUnicode, off: 1},
		{in: `"\uD800"`, e: scan.ErrBadSurrogate, off: 1},
		{in: `"\uDC00"`, e: scan.ErrBadSurrogate, off: 1},
		{in: `"\uD800\u0041"`, e: scan.ErrBadSurrogate, off: 1},
		{in: "\"a\x01b\"", e: scan.ErrStringControl, off: 2},
		{in: "\"a\tb\"", e: scan.ErrStringControl, off: 2},
		{in: `[1, 2,]`, off: 5},
		{in: `{"a":1,}`, off: 6},
		{in: `[1 2]`, off: 3},
		{in: `[1, 2`, e: scan.ErrUnterminated, off: 0},
		{in: `{"a":1`, e: scan.ErrUnterminated, off: 0},
		{in: `{a: 1}`, off: 1},
		{in: `{"a" 1}`, off: 5},
		{in: `{"a":}`, off: 5},
		{in: `[,]`, off: 1},
		{in: `]`, off: 0},
		{in: `"a" "b"`, off: 4},
		{in: `true false`, off: 5},
		{in: `{} {}`, off: 3},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.in))
		if err == nil {
			t.Errorf("%q: parsed, want error", tc.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not unwrap to ErrParse", tc.in, err)
		}
		if tc.e != nil && !errors.Is(err, tc.e) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.e)
		}
		off, ok := scan.Offset(err)
		if !ok {
			t.Errorf("%q: error %v carries no offset", tc.in, err)
			continue
		}
		if off != tc.off {
			t.Errorf("%q: error at offset %d, want %d (%v)", tc.in, off, tc.off, err)
		}
	}
}

func TestParseDeepNesting(t *testing.T) {
	in := ""
	for i := 0; i < 64; i++ {
		in += "["
	}
	in += "1"
	for i := 0; i < 64; i++ {
		in += "]"
	}
	v := mustParse(t, in)
	for i := 0; i < 64; i++ {
		if v.Type != jsontree.ArrayType || len(v.Arr) != 1 {
			t.Fatalf("depth %d: not a one-element array", i)
		}
		v = v.Arr[0]
	}
	if v.Num != 1 {
		t.Fatal("innermost value lost")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: `{"a": [1, 2, 3]}`, want: true},
		{in: `null`, want: true},
		{in: `nul`, want: false},
		{in: `{"a":}`, want: false},
		{in: `[1,]`, want: false},
		{in: ``, want: false},
	}
	for _, tc := range tests {
		if got := Valid([]byte(tc.in)); got != tc.want {
			t.Errorf("Valid(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
