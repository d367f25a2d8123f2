// Package query runs expressions and JSONPath selections over values.
//
// Eval and Match compile expr-lang expressions against an environment
// holding the document's members by name, plus doc for the whole tree.
// Select runs RFC 9535 JSONPath over the document's any projection.
//
// # Usage
//
//	ok, err := query.Match(doc, `user.age >= 21 && haspath(".user.name")`)
//
// # Related Packages
//
//   - github.com/signadot/go-jsondom/gomap - projections the environment
//     and selection results pass through
//   - github.com/signadot/go-jsondom/dom - document model
package query
