package main

import (
	"io"

	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
	"github.com/signadot/go-jsondom/parse"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode on a single line'"`
	Indent  int  `cli:"name=indent desc='indent width for nested values'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Depth   int  `cli:"name=depth desc='max nesting depth when parsing'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	// input buffers are read once per document and never reused, so
	// the parsed trees may borrow them
	res := []parse.ParseOption{parse.ZeroCopy()}
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Compact {
		res = append(res, encode.Compact())
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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
		// -color=false forces plain output even on a tty
		return res
	}
	return append(res, encode.AutoColors(w))
}

// render encodes v to w, keeping compact output line oriented.
func (cfg *MainConfig) render(w io.Writer, v *dom.Value) error {
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	if cfg.Compact {
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply arg as an RFC 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Expr   bool `cli:"name=e aliases=expr desc='pattern is a boolean expression'"`
	String bool `cli:"name=s desc='pattern arg as string'"`
	File   bool `cli:"name=f desc='pattern arg as file'"`
}
