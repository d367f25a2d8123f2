package dom

import (
	"errors"

	"github.com/signadot/go-jsondom/dom/dpath"
)

// Error taxonomy. In checked mode (SetChecked, JSONDOM_CHECKED) misuse
// panics with an error wrapping one of these; in unchecked mode the
// operation degrades to its documented neutral result instead.
var (
	// ErrTypeMismatch reports an operation applied to a value whose type
	// cannot support it, such as indexing a string or converting an array
	// to a number.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrRangeOverflow reports a numeric conversion whose value does not
	// fit the requested target type.
	ErrRangeOverflow = errors.New("range overflow")

	// ErrPrecondition reports an operation whose preconditions do not
	// hold, such as stepping an iterator past its end.
	ErrPrecondition = errors.New("precondition violated")

	// ErrMalformedPath reports a path expression with dropped steps.
	ErrMalformedPath = dpath.ErrMalformed
)
