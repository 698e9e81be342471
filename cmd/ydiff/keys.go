package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ydiff-project/ydiff"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: keys requires 2 args, got %v", cli.ErrUsage, args)
	}
	leftRaw, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	rightRaw, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	sess, err := ydiff.NewSession(leftRaw, rightRaw)
	if err != nil {
		return err
	}
	defer sess.Cleanup()
	for _, k := range sess.Keys() {
		if _, err := fmt.Fprintln(cc.Out, k); err != nil {
			return err
		}
	}
	return nil
}
