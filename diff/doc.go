// Package diff computes RFC 6902 JSON Patch documents between trees.
//
// # Usage
//
//	// Compute a patch turning from into to
//	patchDoc := diff.Diff(from, to)
//
//	// Apply it elsewhere
//	patched, err := patch.Apply(from, patchDoc)
//
// The result is itself a document tree: an Array of {op, path, value}
// Objects with JSON Pointer paths, empty when the inputs are equal.
// Object members align by name; array elements align by a value
// summary, so an insertion in the middle of an array patches as one
// add instead of rewriting every later index.
//
// # Related Packages
//
//   - github.com/signadot/go-jsondom/dom - document model
//   - github.com/signadot/go-jsondom/patch - apply patch documents
package diff
