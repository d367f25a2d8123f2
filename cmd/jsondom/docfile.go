package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile reads one JSON document from path, or from cc.In when
// path is "-".
func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*dom.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// getish reads a document from arg, treating arg as a file path with
// -f and as literal JSON text with -s or by default.
func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*dom.Value, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return getDocFile(cc, arg, opts...)
	}
	return parse.ParseString(arg, opts...)
}
