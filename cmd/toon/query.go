package main

import (
	"fmt"

	"github.com/toon-format/go-toon/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: query requires an expression and optionally a file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	y, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	doc := ir.ToAny(y)
	env := map[string]any{"doc": doc}
	if m, ok := doc.(map[string]any); ok {
		// top level fields are addressable directly
		for k, v := range m {
			if _, clash := env[k]; !clash {
				env[k] = v
			}
		}
	}
	prg, err := expr.Compile(args[0], expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", args[0], err)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return fmt.Errorf("error encoding query result: %w", err)
	}
	return encodeOut(cfg.MainConfig, cc.Out, res)
}
