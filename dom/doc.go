// Package dom provides the in-memory document object model for JSON values.
//
// # Overview
//
// The dom package defines the core data structures for representing JSON
// documents as a tree of values. All documents (whether parsed from text,
// created programmatically, or converted from Go data) are represented as
// dom.Value trees.
//
// A Value is a tagged union over the eight JSON-flavored types. The model is
// purely semantic: it carries no position information from input documents,
// and it performs no text formatting of its own. Parsing and encoding live in
// sibling packages that build on this one.
//
// # Value Types
//
// The Type method reports the value's type:
//
//   - NullType: null value, and the zero state of every Value
//   - IntType: signed 64-bit integer
//   - UintType: unsigned 64-bit integer
//   - RealType: 64-bit IEEE float
//   - StringType: string value
//   - BoolType: boolean (true/false)
//   - ArrayType: ordered list with possibly sparse indices
//   - ObjectType: key-value pairs ordered by key
//
// The listed order is total and fixed. Comparisons between values of
// different types are decided by this order alone, so a heterogeneous set of
// values always sorts the same way.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := dom.FromString("hello")
//	n := dom.FromInt(42)
//	b := dom.FromBool(true)
//	arr := dom.New(dom.ArrayType)
//	obj := dom.New(dom.ObjectType)
//
// A nil *Value reads as null everywhere a read is concerned, so navigation
// chains never have to nil-check intermediate results.
//
// # Containers
//
// Arrays and objects share a single ordered store keyed by Key. A Key is
// either an index (uint32) or a member name; arrays use index keys, objects
// use name keys. Iteration visits entries in ascending key order, which for
// objects means member names sort lexicographically regardless of insertion
// order.
//
// Arrays may be sparse: the logical length is the largest stored index plus
// one, and indices with no stored entry read as null. Removing an
// intermediate index leaves a hole rather than shifting later elements.
//
// # Access and Auto-Vivification
//
// The At family navigates with write intent: on a null value it first
// promotes the value to the needed container type, and a missing entry is
// materialized as null so that chained assignment works:
//
//	root := dom.Null()
//	root.AtField("servers").At(0).AtField("port").CopyFrom(dom.FromInt(8080))
//
// The TryGet family navigates with read intent: it returns nil for anything
// missing and never mutates.
//
// # String Ownership
//
// String payloads and name keys carry an ownership policy. FromString and
// NameKey copy their input so the tree owns its text. FromStatic and
// StaticKey alias the caller's string, for text whose lifetime outlasts the
// tree. SharedKey defers the copy until the first Clone. See the Policy type.
//
// # Checked Mode
//
// Misuse (indexing a string, converting out of range, malformed paths) is
// reported through the package error values. In unchecked mode, the default,
// operations degrade to a neutral result. Checked mode panics with the
// corresponding error instead; enable it with SetChecked or the
// JSONDOM_CHECKED environment variable. See the Error Taxonomy section of
// errs.go.
//
// # Concurrency
//
// Values are not safe for concurrent use. A tree may be handed between
// goroutines, but all access to a tree and its iterators must come from one
// goroutine at a time.
package dom
