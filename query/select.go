package query

import (
	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/gomap"

	"github.com/theory/jsonpath"
)

// Select runs an RFC 9535 JSONPath expression over the document's any
// projection and converts each selected node back to a value, in the
// path's visit order. Array holes select as nulls.
func Select(root *dom.Value, pathExpr string) ([]*dom.Value, error) {
	p, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, err
	}
	sel := p.Select(gomap.ToAny(root))
	res := make([]*dom.Value, 0, len(sel))
	for _, item := range sel {
		v, err := gomap.ToValue(item)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
