package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	smerge "github.com/alvawei/smerge-sub000"
	"github.com/alvawei/smerge-sub000/merge"

	"github.com/scott-cotton/cli"
)

func mergeFiles(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: merge requires 4 args <base> <local> <remote> <output>, got %v", cli.ErrUsage, args)
	}
	r, err := cfg.runner(cc)
	if err != nil {
		return err
	}
	return r.merge(context.Background(), args[0], args[1], args[2], args[3])
}

func (r *runner) merge(ctx context.Context, base, local, remote, output string) error {
	w := r.out
	if output == "-" {
		w = r.errOut
	}
	trees, err := r.getObjFiles(base, local, remote)
	if err != nil {
		return r.fail(w, err)
	}
	res, err := smerge.Merge(ctx, trees[0], trees[1], trees[2],
		smerge.WithImportUnion(r.cfg.UnionImports),
		smerge.WithParallel(r.cfg.Parallel),
		smerge.WithLabels(r.cfg.LocalLabel, r.cfg.RemoteLabel))
	if err != nil {
		return r.fail(w, err)
	}
	if err := r.putObjFile(output, res.Root); err != nil {
		return r.fail(w, fmt.Errorf("error writing %s: %w", output, err))
	}
	r.status(w, SuccessColor, "%s: %s", res.Outcome, output)
	if n := len(res.SoftConflicts); n != 0 {
		r.status(w, NoticeColor, "%d conflicting comments remain, marked with <<<<<<< %s", n, r.cfg.LocalLabel)
	}
	return nil
}

// fail writes the failure indicator to w and the reason to the diagnostic
// stream.
func (r *runner) fail(w io.Writer, err error) error {
	if errors.Is(err, merge.ErrConflict) {
		r.status(w, FailureColor, "%s: no output written", merge.Conflicted)
	} else {
		r.status(w, FailureColor, "failed: no output written")
	}
	fmt.Fprintf(r.errOut, "%v\n", err)
	return cli.ExitCodeErr(1)
}

func (r *runner) status(w io.Writer, a ColorAttr, msg string, args ...any) {
	fmt.Fprintln(w, r.colors.Color(a, fmt.Sprintf(msg, args...)))
}
