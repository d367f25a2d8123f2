package main

import (
	"fmt"

	"github.com/signadot/go-jsondom"
	"github.com/signadot/go-jsondom/dom"
	jdquery "github.com/signadot/go-jsondom/query"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern or expression", cli.ErrUsage)
	}
	src := args[0]
	var pattern *dom.Value
	if !cfg.Expr {
		pattern, err = getish(cfg.String, cfg.File, cc, src, cfg.parseOpts())
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	matched := 0
	for _, arg := range args {
		doc, err := getDocFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		m := false
		if cfg.Expr {
			m, err = jdquery.Match(doc, src)
			if err != nil {
				return fmt.Errorf("error matching %s: %w", arg, err)
			}
		} else {
			m = jsondom.Matches(doc, pattern)
		}
		if !m {
			continue
		}
		matched++
		if err := cfg.MainConfig.render(cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
