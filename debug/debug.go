package debug

import (
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

type debug struct {
	Path  bool
	Diff  bool
	Parse bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("JSONDOM_DEBUG")
	d.Path = all || boolEnv("JSONDOM_DEBUG_PATH")
	d.Diff = all || boolEnv("JSONDOM_DEBUG_DIFF")
	d.Parse = all || boolEnv("JSONDOM_DEBUG_PARSE")
	d.Query = all || boolEnv("JSONDOM_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Diff() bool {
	return d.Diff
}
func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
