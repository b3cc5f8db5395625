package merge

import (
	"github.com/alvawei/smerge-sub000/debug"
	"github.com/alvawei/smerge-sub000/flat"
	"github.com/alvawei/smerge-sub000/libdiff"
)

// Sweep looks for the first entry of the subtree at i, in pre-order,
// which d deletes, replaces, re-attributes or inserts into.
func Sweep(t *flat.Tree, d *libdiff.Result, i int) (int, bool) {
	end := t.End(i)
	for k := i; k < end; k++ {
		if !d.Touches(k) {
			continue
		}
		if debug.Sweep() {
			debug.Logf("sweep %s: hit %s\n", t.Path(i), t.Path(k))
		}
		return k, true
	}
	return 0, false
}
