package main

import (
	"fmt"

	smerge "github.com/alvawei/smerge-sub000"
	"github.com/alvawei/smerge-sub000/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	r, err := cfg.runner(cc)
	if err != nil {
		return err
	}
	differs, err := r.diff(args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (r *runner) diff(a, b string) (bool, error) {
	trees, err := r.getObjFiles(a, b)
	if err != nil {
		return false, err
	}
	lines := libdiff.Describe(smerge.Diff(trees[0], trees[1]))
	for _, ln := range lines {
		if _, err := fmt.Fprintln(r.out, r.colors.Line(ln)); err != nil {
			return false, err
		}
	}
	return len(lines) != 0, nil
}
