package diff

import (
	"strconv"
	"unicode/utf8"

	"github.com/signadot/go-jsondom/dom"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// array aligns elements by summary and emits operations against the
// evolving document: a removal shifts later elements left, so its
// index repeats, while adds and kept elements advance it.
func (d *differ) array(from, to *dom.Value, path string) {
	elemMap := map[string]rune{}
	fromRunes := mapElements(elemMap, from)
	toRunes := mapElements(elemMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti, pos := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		run := &diffs[i]
		n := utf8.RuneCountInString(run.Text)
		switch run.Type {
		case diffpatch.DiffEqual:
			for k := 0; k < n; k++ {
				d.walk(from.TryGet(fi), to.TryGet(ti), indexPath(path, pos))
				fi++
				ti++
				pos++
			}
		case diffpatch.DiffInsert:
			for k := 0; k < n; k++ {
				d.add(indexPath(path, pos), to.TryGet(ti))
				ti++
				pos++
			}
		case diffpatch.DiffDelete:
			// pair this run with a directly following insert run:
			// paired positions patch in place, the excess removes or
			// adds
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = utf8.RuneCountInString(diffs[i+1].Text)
			}
			reps := min(n, ins)
			for k := 0; k < reps; k++ {
				d.walk(from.TryGet(fi), to.TryGet(ti), indexPath(path, pos))
				fi++
				ti++
				pos++
			}
			for k := reps; k < n; k++ {
				d.remove(indexPath(path, pos))
				fi++
			}
			for k := reps; k < ins; k++ {
				d.add(indexPath(path, pos), to.TryGet(ti))
				ti++
				pos++
			}
			if ins > 0 {
				i++
			}
		}
	}
}

func mapElements(m map[string]rune, v *dom.Value) []rune {
	rs := make([]rune, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		rs = append(rs, internRune(m, summary(v.TryGet(i))))
	}
	return rs
}

// summary renders an element for alignment. Containers reduce to
// their type name so same-typed containers align as equal and diff
// recursively. Scalars carry a content hash so only equal scalars
// align; a colliding pair still diffs correctly, it just aligns where
// it should not.
func summary(el *dom.Value) string {
	t := el.Type()
	switch {
	case t == dom.NullType:
		return t.String()
	case t.IsLeaf():
		return t.String() + "-" + strconv.FormatUint(el.Hash(), 16)
	default:
		return t.String()
	}
}
