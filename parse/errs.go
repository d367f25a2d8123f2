package parse

import "errors"

var (
	ErrParse = errors.New("parse error")
	ErrDepth = errors.New("nesting too deep")
)
