package diff

import (
	"github.com/signadot/go-jsondom/debug"
	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
)

// Diff produces an RFC 6902 JSON Patch document turning from into to:
// an Array of {op, path, value} Objects. Equal trees produce an empty
// Array. Neither input is mutated, and the result shares no nodes with
// either.
//
//   - if the node types differ, the result replaces the node
//   - for Objects, a member only in to adds, a member only in from
//     removes, and a shared member recurses
//   - for Arrays, elements align by a value summary; paired
//     delete/insert runs become replaces and the remainder add or
//     remove at the evolving index
//
// The result may be used as a patch document in patch.Apply.
func Diff(from, to *dom.Value) *dom.Value {
	d := &differ{ops: dom.New(dom.ArrayType)}
	d.walk(from, to, "")
	if debug.Diff() {
		debug.Logf("diff produced %d ops\n%s\n", d.ops.Len(), encode.MustString(d.ops))
	}
	return d.ops
}

func (d *differ) walk(from, to *dom.Value, path string) {
	if dom.Compare(from, to) == 0 {
		return
	}
	if from.Type() != to.Type() {
		d.replace(path, to)
		return
	}
	switch from.Type() {
	case dom.ObjectType:
		d.object(from, to, path)
	case dom.ArrayType:
		d.array(from, to, path)
	default:
		d.replace(path, to)
	}
}
