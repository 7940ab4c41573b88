// Package textdiff reports differences between two serialized
// documents, for error messages and test output.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diffs returns the character-level edits turning from into to.
func Diffs(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	return dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
}

// Pretty renders a line diff of from and to with -/+ markers.
func Pretty(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		mark := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			mark = "-"
		case diffpatch.DiffInsert:
			mark = "+"
		}
		for _, ln := range splitLines(d.Text) {
			sb.WriteString(mark)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
