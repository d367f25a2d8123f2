package query

import (
	"os"

	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/gomap"

	"github.com/expr-lang/expr"
)

func exprOpts(root *dom.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			p, err := dom.CompilePath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(p.Resolve(root)), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			p, err := dom.CompilePath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return p.ResolveOr(root, nil) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
