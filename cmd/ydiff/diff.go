package main

import (
	"fmt"
	"io"
	"os"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/ydiff-project/ydiff"
	"github.com/ydiff-project/ydiff/encode"
	"github.com/ydiff-project/ydiff/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	leftRaw, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	rightRaw, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	sess, err := ydiff.NewSession(leftRaw, rightRaw, cfg.diffOpts()...)
	if err != nil {
		// side-tagged parse errors, both sides reported together
		return err
	}
	defer sess.Cleanup()

	var nodes []*libdiff.DiffNode
	if keys := sess.Keys(); len(keys) != 0 {
		for _, k := range keys {
			if _, err := sess.Step(k); err != nil {
				return err
			}
		}
		nodes = sess.Results()
	} else {
		nodes, err = sess.WholeDocument()
		if err != nil {
			return err
		}
	}
	if cfg.Where != "" {
		nodes, err = filterNodes(cfg.Where, nodes)
		if err != nil {
			return err
		}
	}
	stats := libdiff.NodeStats(nodes)
	if cfg.MainConfig.JSON {
		d, err := encode.JSONIndent(nodes)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	} else {
		if err := encode.Encode(nodes, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if cfg.Stats {
		_, err := fmt.Fprintf(cc.Out, "additions=%d deletions=%d modified=%d\n",
			stats.Additions, stats.Deletions, stats.Modified)
		if err != nil {
			return err
		}
	}
	if stats.Any() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// filterNodes keeps the top-level nodes for which the expression
// holds; the environment exposes key, diffType and hasDiff.
func filterNodes(src string, nodes []*libdiff.DiffNode) ([]*libdiff.DiffNode, error) {
	env := map[string]any{
		"key":      "",
		"diffType": "",
		"hasDiff":  false,
	}
	prg, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: bad -where expression: %v", cli.ErrUsage, err)
	}
	res := make([]*libdiff.DiffNode, 0, len(nodes))
	for _, n := range nodes {
		key := ""
		if n.Key != nil {
			key = *n.Key
		}
		out, err := expr.Run(prg, map[string]any{
			"key":      key,
			"diffType": n.Type.String(),
			"hasDiff":  n.HasDiff,
		})
		if err != nil {
			return nil, err
		}
		if out.(bool) {
			res = append(res, n)
		}
	}
	return res, nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}
