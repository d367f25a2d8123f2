package diff

import (
	"strconv"
	"strings"

	"github.com/signadot/go-jsondom/dom"
)

// differ accumulates patch operations while walking two trees.
type differ struct {
	ops *dom.Value
}

func (d *differ) emit(op, path string, value *dom.Value) {
	o := dom.New(dom.ObjectType)
	o.AtField("op").Swap(dom.FromString(op))
	o.AtField("path").Swap(dom.FromString(path))
	if value != nil {
		o.AtField("value").Swap(value.Clone())
	}
	d.ops.Append(o)
}

func (d *differ) add(path string, value *dom.Value) {
	if value == nil {
		// array holes read as null
		value = dom.Null()
	}
	d.emit("add", path, value)
}

func (d *differ) remove(path string) {
	d.emit("remove", path, nil)
}

func (d *differ) replace(path string, value *dom.Value) {
	if value == nil {
		value = dom.Null()
	}
	d.emit("replace", path, value)
}

// memberPath appends an object member token to a JSON Pointer,
// escaping per RFC 6901.
func memberPath(path, name string) string {
	name = strings.ReplaceAll(name, "~", "~0")
	name = strings.ReplaceAll(name, "/", "~1")
	return path + "/" + name
}

// indexPath appends an array index token to a JSON Pointer.
func indexPath(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}

// internRune assigns a stable rune to each distinct summary string.
// Runes in the surrogate range do not survive string round-trips, so
// interning skips over it.
func internRune(m map[string]rune, s string) rune {
	r, ok := m[s]
	if !ok {
		r = rune(len(m))
		if r >= 0xd800 {
			r += 0x800
		}
		m[s] = r
	}
	return r
}
