package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j (default from the file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j (default from the file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "smerge").
		WithSynopsis("smerge [opts] command [opts]").
		WithDescription("smerge merges syntax trees structurally.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return smergeMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			DiffCommand(cfg))
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <base> <local> <remote> <output>").
		WithDescription(mergeDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeFiles(cfg, cc, args)
		})
}

const mergeDescription = `merge performs a three-way merge of tree documents.

local and remote are two edited versions of base.  The merged document is
written to output, or to standard output when output is '-'.

Edits from both sides are combined when they touch disjoint parts of the
tree.  merge fails, writing nothing, when one side deletes or replaces a
subtree the other side edits, when both sides set different modifiers on a
node, or when both sides insert at the same position of a list.

Comments changed differently on both sides are kept together between
conflict markers:

  <<<<<<< LOCAL
  // local comment
  =======
  // remote comment
  >>>>>>> REMOTE

and merge reports that they remain.  Import lists of the root are merged as
sets unless -noImports is given.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff prints the edit script turning tree document a into b; it exits 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
