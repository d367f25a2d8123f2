package dom

import (
	"fmt"
	"os"
	"strconv"
)

// checked selects how misuse is reported. Unchecked, the default,
// degrades to the operation's neutral result. Checked panics with an
// error wrapping the taxonomy sentinel.
var checked bool

func init() {
	checked = boolEnv("JSONDOM_CHECKED")
}

func boolEnv(nm string) bool {
	val := os.Getenv(nm)
	if val == "" {
		return false
	}
	res, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return res
}

// SetChecked switches checked mode on or off and returns the previous
// setting. Not safe to call concurrently with document operations.
func SetChecked(on bool) bool {
	prev := checked
	checked = on
	return prev
}

// Checked reports whether checked mode is on.
func Checked() bool {
	return checked
}

// violate reports misuse. Callers fall through to their neutral result
// when it returns.
func violate(sentinel error, format string, args ...any) {
	if !checked {
		return
	}
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}
