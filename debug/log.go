package debug

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Logf writes a diagnostic line to stderr. Raw Go maps, slices and
// json.Number arguments render as indented JSON; document tree
// arguments should be pre-rendered by the caller (encode.MustString).
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
