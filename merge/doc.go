// Package merge combines two edit scripts computed against the same base
// tree into one merged tree.
//
// # Usage
//
//	base := flat.New(baseRoot)
//	local := libdiff.Diff(base, flat.New(localRoot))
//	remote := libdiff.Diff(base, flat.New(remoteRoot))
//	res, err := merge.Merge(base, local, remote)
//	if errors.Is(err, merge.ErrConflict) {
//		// no tree
//	}
//
// # Resolution
//
// The merge walks the base tree once.  At each node:
//
//   - a deletion or replacement by one side is applied when the other side
//     leaves the whole subtree untouched (see [Sweep]); otherwise the merge
//     stops with a hard conflict.
//   - comments changed by both sides to different texts are combined
//     between marker lines and reported in [Result.SoftConflicts].
//   - modifiers changed by both sides to different sets are a hard
//     conflict.
//   - list inserts of both sides are spliced by position; two runs at the
//     same position are a hard conflict.
//
// Everything else is copied from the base tree.  The inputs are never
// modified.
package merge
