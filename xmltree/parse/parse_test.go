package parse

import (
	"errors"
	"testing"

	"github.com/doctree/doctree/scan"
	"github.com/doctree/doctree/xmltree"
)

func mustParse(t *testing.T, in string) *xmltree.Node {
	t.Helper()
	n, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("%q: %v", in, err)
	}
	return n
}

func TestParseElements(t *testing.T) {
	tests := []struct {
		in   string
		want *xmltree.Node
	}{
		{in: `<a/>`, want: xmltree.New("a")},
		{in: `<a />`, want: xmltree.New("a")},
		{in: `<a></a>`, want: xmltree.New("a")},
		{in: `<a>hello</a>`, want: xmltree.New("a").SetText("hello")},
		{in: `<note:x-1_2/>`, want: xmltree.New("note:x-1_2")},
		{
			in: `<r><a>1</a><b/></r>`,
			want: xmltree.New("r").
				AddChild(xmltree.New("a").SetText("1")).
				AddChild(xmltree.New("b")),
		},
		{
			in: "  <r>\n<a/>\n</r>  ",
			want: xmltree.New("r").
				SetText("\n\n").
				AddChild(xmltree.New("a")),
		},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in)
		if !xmltree.Equal(got, tc.want) {
			t.Errorf("%q: parsed wrong tree", tc.in)
		}
	}
}

func TestParseAttrs(t *testing.T) {
	n := mustParse(t, `<a one="1" two='second "take"' three="a&amp;b" four = 'x'/>`)
	tests := []struct {
		k, v string
	}{
		{k: "one", v: "1"},
		{k: "two", v: `second "take"`},
		{k: "three", v: "a&b"},
		{k: "four", v: "x"},
	}
	for _, tc := range tests {
		got, ok := n.Attr(tc.k)
		if !ok || got != tc.v {
			t.Errorf("attr %s: got %q, want %q", tc.k, got, tc.v)
		}
	}
	if !n.Empty() {
		t.Error("attributes alone should leave the node empty")
	}
}

func TestParseDupAttrs(t *testing.T) {
	n := mustParse(t, `<a k="1" k="2"/>`)
	if got := n.AttrOr("k", ""); got != "2" {
		t.Fatalf("k = %q, want last occurrence 2", got)
	}
	if len(n.AttrNames()) != 1 {
		t.Fatalf("node has %d attributes, want 1", len(n.AttrNames()))
	}
}

func TestParseEntities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `<a>x&lt;y</a>`, want: "x<y"},
		{in: `<a>x&gt;y</a>`, want: "x>y"},
		{in: `<a>one &amp; two</a>`, want: "one & two"},
		{in: `<a>&quot;hi&quot;</a>`, want: `"hi"`},
		{in: `<a>it&apos;s</a>`, want: "it's"},
		{in: `<a>&nope; here</a>`, want: "&nope; here"},
		{in: `<a>AT&T</a>`, want: "AT&T"},
		{in: `<a>tail&</a>`, want: "tail&"},
		{in: `<a>&ltx;</a>`, want: "&ltx;"},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in)
		if got.Text != tc.want {
			t.Errorf("%s: text %q, want %q", tc.in, got.Text, tc.want)
		}
	}
}

func TestParseTextAroundChildren(t *testing.T) {
	n := mustParse(t, `<p>before<b>bold</b>after</p>`)
	if n.Text != "beforeafter" {
		t.Errorf("text runs concatenate: got %q, want %q", n.Text, "beforeafter")
	}
	if n.Len() != 1 || n.Children[0].Text != "bold" {
		t.Error("child element lost")
	}
}

func TestParseProlog(t *testing.T) {
	in := "<?xml version=\"1.0\"?>\n<!DOCTYPE r>\n<!-- intro -->\n<r/>"
	n := mustParse(t, in)
	if n.Name != "r" {
		t.Fatalf("root %q, want r", n.Name)
	}
}

func TestParseDeepNesting(t *testing.T) {
	in := ""
	for i := 0; i < 64; i++ {
		in += "<d>"
	}
	for i := 0; i < 64; i++ {
		in += "</d>"
	}
	n := mustParse(t, in)
	for i := 0; i < 63; i++ {
		if n.Len() != 1 {
			t.Fatalf("depth %d: %d children, want 1", i, n.Len())
		}
		n = n.Children[0]
	}
	if n.Len() != 0 {
		t.Fatal("innermost element should be empty")
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
		{in: `hello`, off: 0},
		{in: `<`, off: 1},
		{in: `< a/>`, off: 1},
		{in: `<a`, e: scan.ErrUnterminated, off: 0},
		{in: `<a  `, e: scan.ErrUnterminated, off: 0},
		{in: `<a/`, off: 2},
		{in: `<a x>`, off: 4},
		{in: `<a x=1>`, off: 5},
		{in: `<a x = 1>`, off: 7},
		{in: `<a x="1`, e: scan.ErrUnterminated, off: 5},
		{in: `<a x='1"`, e: scan.ErrUnterminated, off: 5},
		{in: `<a>text`, e: scan.ErrUnterminated, off: 0},
		{in: `<a><b></a>`, off: 6},
		{in: `<a></b>`, off: 3},
		{in: `<a></A>`, off: 3},
		{in: `<a></a`, off: 6},
		{in: `<a></a >`, off: 6},
		{in: `<a/>x`, off: 4},
		{in: `<a/><b/>`, off: 4},
		{in: `<?xml`, e: scan.ErrUnterminated, off: 0},
		{in: `<!DOCTYPE r`, e: scan.ErrUnterminated, off: 0},
		{in: `<!--a>b--><r/>`, off: 6},
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

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: `<a><b/></a>`, want: true},
		{in: `<a k="v">text</a>`, want: true},
		{in: `<a>`, want: false},
		{in: `<a></b>`, want: false},
		{in: ``, want: false},
	}
	for _, tc := range tests {
		if got := Valid([]byte(tc.in)); got != tc.want {
			t.Errorf("Valid(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
