package patch

import (
	"bytes"

	"github.com/signadot/go-jsondom/debug"
	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
	"github.com/signadot/go-jsondom/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies an RFC 6902 patch document, an Array of operation
// Objects as diff.Diff produces, to doc. Neither input is mutated.
// Patching happens on the JSON rendition, so array holes in doc come
// back as explicit nulls. The patch engine works on Array or Object
// rooted documents and has no whole-document operations, so an
// operation at the root path fails.
func Apply(doc, patchDoc *dom.Value) (*dom.Value, error) {
	pd, err := marshal(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	if debug.Diff() {
		debug.Logf("apply %d patch ops to %s\n", patchDoc.Len(), encode.MustString(doc, encode.Compact()))
	}
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// ApplyMerge applies an RFC 7386 merge patch document to doc: object
// members merge recursively, a null member deletes, and anything else
// replaces. Neither input is mutated.
func ApplyMerge(doc, mergeDoc *dom.Value) (*dom.Value, error) {
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	md, err := marshal(mergeDoc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, md)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

func marshal(v *dom.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(v, &buf, encode.Compact()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
