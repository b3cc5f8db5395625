// Package smerge merges two edited versions of a syntax tree against
// their common ancestor.
//
// # Usage
//
//	res, err := smerge.Merge(ctx, base, local, remote)
//	if errors.Is(err, merge.ErrConflict) {
//		// hard conflict, no tree
//	}
//	if len(res.SoftConflicts) != 0 {
//		// some comments carry conflict markers
//	}
//
// Merge diffs base against each side (see package libdiff) and combines
// the two edit scripts (see package merge).  Import lists of the root are
// taken out of the trees before diffing and merged as sets, since their
// order carries no meaning.
//
// # Related Packages
//
//   - github.com/alvawei/smerge-sub000/ast - Tree model
//   - github.com/alvawei/smerge-sub000/libdiff - Tree edit distance
//   - github.com/alvawei/smerge-sub000/merge - Three-way merge of edit scripts
package smerge

import (
	"context"
	"errors"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/debug"
	"github.com/alvawei/smerge-sub000/flat"
	"github.com/alvawei/smerge-sub000/libdiff"
	"github.com/alvawei/smerge-sub000/merge"

	"golang.org/x/sync/errgroup"
)

var ErrNoBase = errors.New("no base tree")

type MergeConfig struct {
	ImportUnion bool
	Parallel    bool
	LocalLabel  string
	RemoteLabel string
}

type MergeOpt func(*MergeConfig)

// WithImportUnion controls whether root import lists are merged as sets.
// It defaults to true.
func WithImportUnion(v bool) MergeOpt {
	return func(c *MergeConfig) { c.ImportUnion = v }
}

// WithParallel controls whether the two diffs run concurrently.  It
// defaults to true.
func WithParallel(v bool) MergeOpt {
	return func(c *MergeConfig) { c.Parallel = v }
}

// WithLabels sets the names used in combined comments.
func WithLabels(local, remote string) MergeOpt {
	return func(c *MergeConfig) {
		c.LocalLabel = local
		c.RemoteLabel = remote
	}
}

// Merge computes the three-way merge of local and remote against base.
// None of the input trees are modified.
func Merge(ctx context.Context, base, local, remote *ast.Node, opts ...MergeOpt) (*merge.Result, error) {
	cfg := &MergeConfig{
		ImportUnion: true,
		Parallel:    true,
		LocalLabel:  "LOCAL",
		RemoteLabel: "REMOTE",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if base == nil {
		return nil, ErrNoBase
	}
	var imps *imports
	if cfg.ImportUnion {
		imps = &imports{}
		var lat, rat int
		base, imps.at, imps.base = stripImports(base)
		local, lat, imps.local = stripImports(local)
		remote, rat, imps.remote = stripImports(remote)
		for _, at := range []int{lat, rat} {
			if imps.at == -1 {
				imps.at = at
			}
		}
	}
	b := flat.New(base)
	ld, rd, err := diffs(ctx, b, flat.New(local), flat.New(remote), cfg.Parallel)
	if err != nil {
		return nil, err
	}
	res, err := merge.Merge(b, ld, rd, merge.MergeLabels(cfg.LocalLabel, cfg.RemoteLabel))
	if err != nil {
		return res, err
	}
	if imps != nil && res.Root != nil {
		imps.restore(res.Root)
	}
	return res, nil
}

func diffs(ctx context.Context, b, l, r *flat.Tree, parallel bool) (*libdiff.Result, *libdiff.Result, error) {
	if !parallel {
		return libdiff.Diff(b, l), libdiff.Diff(b, r), nil
	}
	var ld, rd *libdiff.Result
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ld = libdiff.Diff(b, l)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rd = libdiff.Diff(b, r)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if debug.Diff() {
		debug.Logf("diffs: local cost %d, remote cost %d\n", ld.Cost, rd.Cost)
	}
	return ld, rd, nil
}

// Diff computes the edit script turning a into b.
func Diff(a, b *ast.Node) *libdiff.Result {
	return libdiff.Diff(flat.New(a), flat.New(b))
}
