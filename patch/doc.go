// Package patch applies patch documents to values.
//
// Apply consumes RFC 6902 JSON Patch documents, such as those diff.Diff
// produces, and ApplyMerge consumes RFC 7386 merge patches. Both leave
// their inputs unmodified and return a freshly parsed tree.
//
// # Usage
//
//	out, err := patch.Apply(doc, ops)
//	if err != nil {
//		return err
//	}
//
// # Related Packages
//
//   - github.com/signadot/go-jsondom/diff - produce patch documents
//   - github.com/signadot/go-jsondom/dom - document model
package patch
