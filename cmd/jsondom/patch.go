package main

import (
	"fmt"

	"github.com/signadot/go-jsondom"
	"github.com/signadot/go-jsondom/dom"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch document and a file to which to apply it", cli.ErrUsage)
	}
	patchDoc, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *dom.Value
	if cfg.Merge {
		res, err = jsondom.ApplyMerge(target, patchDoc)
	} else {
		res, err = jsondom.Apply(target, patchDoc)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := cfg.MainConfig.render(cc.Out, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*dom.Value, error) {
	res, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}
