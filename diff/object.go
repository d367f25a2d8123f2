package diff

import (
	"github.com/signadot/go-jsondom/dom"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// object diffs member names, then adds a node for every name only in
// to, removes every name only in from, and recurses on shared names.
func (d *differ) object(from, to *dom.Value, path string) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		run := &diffs[i]
		switch run.Type {
		case diffpatch.DiffDelete:
			for _, r := range run.Text {
				d.remove(memberPath(path, runeMap[r]))
			}
		case diffpatch.DiffEqual:
			for _, r := range run.Text {
				name := runeMap[r]
				d.walk(from.TryGetField(name), to.TryGetField(name), memberPath(path, name))
			}
		case diffpatch.DiffInsert:
			for _, r := range run.Text {
				name := runeMap[r]
				d.add(memberPath(path, name), to.TryGetField(name))
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, v *dom.Value) []rune {
	rs := make([]rune, 0, v.Len())
	for name := range v.Items() {
		r := internRune(m, name)
		im[r] = name
		rs = append(rs, r)
	}
	return rs
}
