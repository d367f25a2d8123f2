// Package jsondom bundles one-call entry points over the dom, parse,
// encode, diff, patch and query packages.
package jsondom

import (
	"fmt"
	"io"

	"github.com/signadot/go-jsondom/diff"
	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
	"github.com/signadot/go-jsondom/parse"
	"github.com/signadot/go-jsondom/patch"
	"github.com/signadot/go-jsondom/query"
)

// Parse reads a JSON document into a value tree.
func Parse(d []byte, opts ...parse.ParseOption) (*dom.Value, error) {
	return parse.Parse(d, opts...)
}

// MustParse is Parse for known-good input; it panics on error.
func MustParse(d []byte, opts ...parse.ParseOption) *dom.Value {
	v, err := parse.Parse(d, opts...)
	if err != nil {
		panic(fmt.Sprintf("jsondom: %v", err))
	}
	return v
}

// Encode writes v to w as JSON.
func Encode(v *dom.Value, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(v, w, opts...)
}

// String renders v as JSON text.
func String(v *dom.Value, opts ...encode.EncodeOption) string {
	return encode.MustString(v, opts...)
}

// Diff produces the RFC 6902 patch document turning from into to.
func Diff(from, to *dom.Value) *dom.Value {
	return diff.Diff(from, to)
}

// Apply applies an RFC 6902 patch document to doc.
func Apply(doc, patchDoc *dom.Value) (*dom.Value, error) {
	return patch.Apply(doc, patchDoc)
}

// ApplyMerge applies an RFC 7386 merge patch document to doc.
func ApplyMerge(doc, mergeDoc *dom.Value) (*dom.Value, error) {
	return patch.ApplyMerge(doc, mergeDoc)
}

// Eval evaluates an expression against doc.
func Eval(doc *dom.Value, src string) (*dom.Value, error) {
	return query.Eval(doc, src)
}

// Select returns the values a JSONPath query selects from doc.
func Select(doc *dom.Value, pathExpr string) ([]*dom.Value, error) {
	return query.Select(doc, pathExpr)
}
