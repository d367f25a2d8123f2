// Package dpath compiles textual document paths.
//
// The grammar:
//
//	.        separator; a leading separator is tolerated
//	.name    object member step
//	[n]      array index step, n a non-negative decimal literal
//	.%       member step bound from the next positional argument
//	[%]      index step bound from the next positional argument
//
// Compilation is total: malformed steps are dropped and reported
// through the returned error, so callers choose between lenient (keep
// the surviving steps) and strict (fail on any error) behavior.
package dpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports dropped steps or unused arguments; errors.Is
// matches it on every compilation error.
var ErrMalformed = errors.New("malformed path")

// ArgKind discriminates index arguments from name arguments.
type ArgKind uint8

const (
	IndexArg ArgKind = iota
	NameArg
)

func (k ArgKind) String() string {
	s, ok := map[ArgKind]string{
		IndexArg: "index",
		NameArg:  "name",
	}[k]
	if ok {
		return s
	}
	return "<unknown arg kind>"
}

// Arg is a positional argument bound to a % placeholder at compile
// time.
type Arg struct {
	name  string
	index uint32
	kind  ArgKind
}

// Index returns the argument for an [%] placeholder.
func Index(i uint32) Arg { return Arg{index: i} }

// Name returns the argument for a .% placeholder.
func Name(s string) Arg { return Arg{name: s, kind: NameArg} }

func (a Arg) Kind() ArgKind { return a.kind }

func (a Arg) Index() uint32 { return a.index }

func (a Arg) Name() string { return a.name }

// Step is one fully literal step of a compiled path; placeholders are
// resolved away during compilation.
type Step struct {
	name  string
	index uint32
	kind  ArgKind
}

func (s Step) IsIndex() bool { return s.kind == IndexArg }

func (s Step) IsName() bool { return s.kind == NameArg }

// Index returns the step's array index; meaningful for index steps.
func (s Step) Index() uint32 { return s.index }

// Name returns the step's member name; meaningful for name steps.
func (s Step) Name() string { return s.name }

func (s Step) String() string {
	if s.kind == IndexArg {
		return "[" + strconv.FormatUint(uint64(s.index), 10) + "]"
	}
	return "." + s.name
}

// Steps is a compiled path.
type Steps []Step

func (ss Steps) String() string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteString(s.String())
	}
	return b.String()
}

// Compile parses src, binding % placeholders to args in order.
// Malformed steps (a placeholder with no argument left or bound to
// the wrong argument kind, a bracket without a decimal index or
// without its ']', an empty member name argument) are dropped, and
// surplus arguments are flagged; every such issue is collected into
// the returned error, which wraps ErrMalformed. The surviving steps
// are returned either way.
func Compile(src string, args ...Arg) (Steps, error) {
	c := &compiler{src: src, args: args}
	c.run()
	if len(c.errs) > 0 {
		return c.steps, fmt.Errorf("%w %q: %w", ErrMalformed, src, errors.Join(c.errs...))
	}
	return c.steps, nil
}

type compiler struct {
	src   string
	args  []Arg
	next  int
	steps Steps
	errs  []error
}

func (c *compiler) bad(off int, format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf("offset %d: %s", off, fmt.Sprintf(format, args...)))
}

// takeArg binds the next positional argument to a placeholder of kind
// want.
func (c *compiler) takeArg(off int, want ArgKind) (Arg, bool) {
	if c.next >= len(c.args) {
		c.bad(off, "%s placeholder with no argument left", want)
		return Arg{}, false
	}
	a := c.args[c.next]
	c.next++
	if a.kind != want {
		c.bad(off, "%s placeholder bound to %s argument", want, a.kind)
		return Arg{}, false
	}
	return a, true
}

func (c *compiler) run() {
	i := 0
	for i < len(c.src) {
		switch c.src[i] {
		case '[':
			i = c.bracket(i)
		case '%':
			if a, ok := c.takeArg(i, NameArg); ok {
				if a.name == "" {
					c.bad(i, "empty member name argument")
				} else {
					c.steps = append(c.steps, Step{name: a.name, kind: NameArg})
				}
			}
			i++
		case '.', ']':
			i++
		default:
			start := i
			for i < len(c.src) && c.src[i] != '.' && c.src[i] != '[' {
				i++
			}
			c.steps = append(c.steps, Step{name: c.src[start:i], kind: NameArg})
		}
	}
	if c.next < len(c.args) {
		c.bad(len(c.src), "%d arguments unused", len(c.args)-c.next)
	}
}

// bracket compiles the step whose '[' sits at off and returns the
// offset to resume at: after the matching ']' when there is one, the
// end of the source otherwise.
func (c *compiler) bracket(off int) int {
	rest := c.src[off+1:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		c.bad(off, "unterminated bracket step")
		return len(c.src)
	}
	body := rest[:end]
	cont := off + 1 + end + 1
	switch {
	case body == "%":
		if a, ok := c.takeArg(off+1, IndexArg); ok {
			c.steps = append(c.steps, Step{index: a.index})
		}
	case body == "":
		c.bad(off, "bracket step without index")
	default:
		n, err := strconv.ParseUint(body, 10, 32)
		if err != nil {
			c.bad(off, "bad index %q", body)
			break
		}
		c.steps = append(c.steps, Step{index: uint32(n)})
	}
	return cont
}
