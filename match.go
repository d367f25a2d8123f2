package jsondom

import (
	"github.com/signadot/go-jsondom/dom"
)

// Matches reports whether doc structurally matches pattern. A null
// pattern matches any value, an Object pattern requires each of its
// members to match the document's member of the same name (extra
// document members are fine), an Array pattern matches elementwise at
// equal length, and scalars match when they compare equal. Array
// holes in the pattern read as null and so act as wildcards.
func Matches(doc, pattern *dom.Value) bool {
	if pattern.Type() == dom.NullType {
		return true
	}
	if doc.Type() != pattern.Type() {
		return false
	}
	switch pattern.Type() {
	case dom.ObjectType:
		return matchObject(doc, pattern)
	case dom.ArrayType:
		return matchArray(doc, pattern)
	default:
		return dom.Compare(doc, pattern) == 0
	}
}

func matchObject(doc, pattern *dom.Value) bool {
	for name, pel := range pattern.Items() {
		del := doc.TryGetField(name)
		if del == nil {
			return false
		}
		if !Matches(del, pel) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern *dom.Value) bool {
	if doc.Len() != pattern.Len() {
		return false
	}
	for i := 0; i < pattern.Len(); i++ {
		if !Matches(doc.TryGet(i), pattern.TryGet(i)) {
			return false
		}
	}
	return true
}
