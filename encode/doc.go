// Package encode renders document trees as JSON text.
//
// # Usage
//
//	// Encode with default two-space indentation
//	v := dom.FromMap(map[string]*dom.Value{
//	    "name": dom.FromString("alice"),
//	    "age":  dom.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout)
//
//	// Encode compactly for wire use
//	err := encode.Encode(v, &buf, encode.Compact())
//
// The writer is deterministic: object members emit in key order, array
// holes emit as null, and non-finite reals emit as null (JSON has no
// spelling for them). EncodeColors and AutoColors add ANSI colors for
// terminal output.
//
// # Related Packages
//
//   - github.com/signadot/go-jsondom/dom - document model
//   - github.com/signadot/go-jsondom/parse - parse text to documents
package encode
