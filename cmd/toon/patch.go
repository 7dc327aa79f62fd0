package main

import (
	"fmt"

	toon "github.com/toon-format/go-toon"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a file and an RFC 6902 patch", cli.ErrUsage)
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	pd, err := readObjData(cc, args[1])
	if err != nil {
		return err
	}
	res, err := toon.Patch(target, pd)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[0], err)
	}
	if err := encodeOut(cfg.MainConfig, cc.Out, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
