// Package parse reads JSON text into document trees.
//
// # Usage
//
//	v, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//	age := v.GetField("age").AsInt(0)
//
//	// Parse from a string
//	v, err = parse.ParseString(`[1, 2, 3]`)
//
// The reader is strict RFC 8259: no comments, no trailing commas, one
// value per document. Integer literals that fit int64 become Int
// nodes, nonnegative ones that only fit uint64 become Uint, and
// everything else becomes Real. Errors wrap ErrParse and carry the
// byte offset, line and column of the failure.
//
// # Zero Copy
//
//	v, err := parse.Parse(data, parse.ZeroCopy())
//
// With ZeroCopy, string payloads and member keys that need no escape
// processing borrow the input buffer instead of copying it. The buffer
// must stay alive and unmodified for the life of the tree; cloning the
// tree detaches it.
//
// # Related Packages
//
//   - github.com/signadot/go-jsondom/dom - document model
//   - github.com/signadot/go-jsondom/encode - render trees to text
package parse
