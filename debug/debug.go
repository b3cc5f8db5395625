package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff    bool
	Script  bool
	Merge   bool
	Sweep   bool
	Imports bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("SMERGE_DEBUG_DIFF")
	d.Script = boolEnv("SMERGE_DEBUG_SCRIPT")
	d.Merge = boolEnv("SMERGE_DEBUG_MERGE")
	d.Sweep = boolEnv("SMERGE_DEBUG_SWEEP")
	d.Imports = boolEnv("SMERGE_DEBUG_IMPORTS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Script() bool {
	return d.Script
}
func Merge() bool {
	return d.Merge
}
func Sweep() bool {
	return d.Sweep
}
func Imports() bool {
	return d.Imports
}
