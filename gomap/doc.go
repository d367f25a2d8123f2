// Package gomap converts between document trees and native Go values.
//
// # Usage
//
//	// Go value to tree
//	v, err := gomap.ToValue(map[string]any{"name": "alice", "age": 30})
//
//	// Tree to Go struct
//	type User struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//	var user User
//	err = gomap.FromValue(v, &user)
//
//	// Tree to the naive any form
//	m := gomap.ToAny(v).(map[string]any)
//
// Plain scalars, []any and map[string]any convert directly; anything
// else round-trips through JSON marshaling, so struct tags behave
// exactly as they do with encoding/json.
//
// # Related Packages
//
//   - github.com/signadot/go-jsondom/dom - document model
//   - github.com/signadot/go-jsondom/parse - JSON reader
package gomap
