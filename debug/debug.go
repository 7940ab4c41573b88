// Package debug holds process-wide debug switches, read from the
// environment once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Merge bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("DOCTREE_DEBUG_PATCH")
	d.Merge = boolEnv("DOCTREE_DEBUG_MERGE")
	d.Eval = boolEnv("DOCTREE_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Merge() bool {
	return d.Merge
}
func Eval() bool {
	return d.Eval
}
