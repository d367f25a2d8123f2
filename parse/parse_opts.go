package parse

type parseOpts struct {
	maxDepth int
	zeroCopy bool
}

type ParseOption func(*parseOpts)

// MaxDepth bounds container nesting. The default is 10000.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ZeroCopy makes string payloads and member keys that need no escape
// processing borrow the input buffer with the own-on-copy policy
// instead of copying. The buffer must stay alive and unmodified for
// the life of the tree; cloning the tree detaches it. Escaped strings
// are rebuilt and owned either way.
func ZeroCopy() ParseOption {
	return func(o *parseOpts) { o.zeroCopy = true }
}
