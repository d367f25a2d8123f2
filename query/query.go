package query

import (
	"fmt"

	"github.com/signadot/go-jsondom/debug"
	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/gomap"

	"github.com/expr-lang/expr"
)

// Eval compiles src, runs it against the document environment, and
// converts the result back to a value. Object members appear in the
// environment by name and doc holds the whole tree; a member itself
// named doc is shadowed.
func Eval(root *dom.Value, src string) (*dom.Value, error) {
	prg, err := expr.Compile(src, exprOpts(root)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, environ(root))
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("eval %q returned %T\n", src, res)
	}
	return gomap.ToValue(res)
}

// Match evaluates src as a boolean over the same environment Eval
// uses.
func Match(root *dom.Value, src string) (bool, error) {
	opts := append(exprOpts(root), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, environ(root))
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("match expression returned %T", res)
	}
	return b, nil
}

func environ(root *dom.Value) map[string]any {
	env := map[string]any{}
	if root.Type() == dom.ObjectType {
		for name, el := range root.Items() {
			env[name] = gomap.ToAny(el)
		}
	}
	env["doc"] = gomap.ToAny(root)
	return env
}
