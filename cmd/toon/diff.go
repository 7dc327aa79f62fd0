package main

import (
	"fmt"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/ir"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
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
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Compare(y1, y2) == 0 {
		return nil
	}
	// diff the normalized encodings so formatting noise drops out
	a := encode.MustString(y1) + "\n"
	b := encode.MustString(y2) + "\n"
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.colorOn(cc.Out) {
		if _, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs))); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	patches := dmp.PatchMake(a, diffs)
	if _, err := cc.Out.Write([]byte(dmp.PatchToText(patches))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
