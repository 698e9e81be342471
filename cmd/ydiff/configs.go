package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/ydiff-project/ydiff/encode"
	"github.com/ydiff-project/ydiff/libdiff"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	JSON  bool `cli:"name=json aliases=j desc='output the diff tree as JSON'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type DiffConfig struct {
	*MainConfig

	Where    string `cli:"name=where desc='expression filtering top-level nodes, e.g. hasDiff && diffType != \"Deleted\"'"`
	Stats    bool   `cli:"name=stats desc='print summary counts'"`
	Depth    int    `cli:"name=depth desc='max recursion depth before collapsing'"`
	SeqLimit int    `cli:"name=seqLimit desc='sequence length above which alignment is positional'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) diffOpts() []libdiff.Opt {
	var opts []libdiff.Opt
	if cfg.Depth > 0 {
		opts = append(opts, libdiff.MaxDepth(cfg.Depth))
	}
	if cfg.SeqLimit > 0 {
		opts = append(opts, libdiff.SequenceFallback(cfg.SeqLimit))
	}
	return opts
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Serve *cli.Command
}
