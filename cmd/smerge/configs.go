package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alvawei/smerge-sub000/config"
	"github.com/alvawei/smerge-sub000/format"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool   `cli:"name=color desc='color output'"`
	NoImports bool   `cli:"name=noImports desc='merge root import lists like any other list'"`
	Serial    bool   `cli:"name=serial desc='compute the two diffs one after the other'"`
	Config    string `cli:"name=config desc='config file (default $XDG_CONFIG_HOME/smerge/config.toml)'"`

	InFormat, OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// optSet reports whether the option called name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// settings reads the config file and applies the command line on top.
func (cfg *MainConfig) settings() (*config.Config, error) {
	var (
		st  *config.Config
		err error
	)
	if cfg.Config != "" {
		st, err = config.LoadFromFile(cfg.Config)
	} else {
		st, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if cfg.optSet("noImports") {
		st.UnionImports = !cfg.NoImports
	}
	if cfg.optSet("serial") {
		st.Parallel = !cfg.Serial
	}
	if cfg.optSet("color") {
		st.Color = config.ColorNever
		if cfg.Color {
			st.Color = config.ColorAlways
		}
	}
	return st, nil
}

func (cfg *MainConfig) runner(cc *cli.Context) (*runner, error) {
	st, err := cfg.settings()
	if err != nil {
		return nil, err
	}
	r := &runner{
		cfg:       st,
		in:        cc.In,
		out:       cc.Out,
		errOut:    os.Stderr,
		inFormat:  cfg.InFormat,
		outFormat: cfg.OutFormat,
		colors:    NoColors(),
	}
	if useColor(st.Color, cc.Out) {
		color.NoColor = false
		r.colors = NewColors()
	}
	return r, nil
}

func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
