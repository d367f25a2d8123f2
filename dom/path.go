package dom

import (
	"github.com/signadot/go-jsondom/debug"
	"github.com/signadot/go-jsondom/dom/dpath"
)

// Path is a compiled document path bound to the access rules of this
// package. Compile once, resolve against any number of roots.
type Path struct {
	steps dpath.Steps
	err   error
}

// NewPath compiles src leniently: malformed steps are dropped and the
// surviving steps resolve as usual. Err reports what was dropped.
func NewPath(src string, args ...dpath.Arg) *Path {
	steps, err := dpath.Compile(src, args...)
	if err != nil && debug.Path() {
		debug.Logf("path %q compiled to %q dropping steps: %v\n", src, steps.String(), err)
	}
	return &Path{steps: steps, err: err}
}

// CompilePath compiles src strictly, failing when any step would be
// dropped.
func CompilePath(src string, args ...dpath.Arg) (*Path, error) {
	steps, err := dpath.Compile(src, args...)
	if err != nil {
		return nil, err
	}
	return &Path{steps: steps}, nil
}

// Err returns the compilation report of a lenient compile, nil when
// every step survived.
func (p *Path) Err() error { return p.err }

// Steps returns the compiled steps.
func (p *Path) Steps() dpath.Steps { return p.steps }

func (p *Path) String() string { return p.steps.String() }

// Resolve walks root without mutating it and returns the node the
// path ends on. A missing entry, or a step applied to the wrong
// container kind, resolves to a fresh null value, never nil.
func (p *Path) Resolve(root *Value) *Value {
	if res := p.ResolveOr(root, nil); res != nil {
		return res
	}
	return Null()
}

// ResolveOr walks like Resolve but returns def (as given) on a miss.
func (p *Path) ResolveOr(root, def *Value) *Value {
	node := root
	for _, st := range p.steps {
		if st.IsIndex() {
			if !node.IsArray() {
				return def
			}
			node = node.TryGet(int(st.Index()))
		} else {
			if !node.IsObject() {
				return def
			}
			node = node.TryGetField(st.Name())
		}
		if node == nil {
			return def
		}
	}
	if node == nil {
		return def
	}
	return node
}

// Make walks root with write intent: null nodes promote to the step's
// container kind and absent entries materialize as null, so the
// returned node is always ready for assignment. A step applied to the
// wrong container kind is a precondition violation; unchecked, the
// walk continues on a detached null node that never attaches to the
// tree.
func (p *Path) Make(root *Value) *Value {
	node := root
	if node == nil {
		violate(ErrPrecondition, "Make of nil root")
		node = Null()
	}
	for _, st := range p.steps {
		if st.IsIndex() {
			if !node.IsArray() {
				if debug.Path() {
					debug.Logf("make %q: index step %s on %s node, detaching\n", p.String(), st, node.Type())
				}
				violate(ErrPrecondition, "index step %s of %s value", st, node.Type())
				node = Null()
			}
			node = node.At(int(st.Index()))
		} else {
			if !node.IsObject() {
				if debug.Path() {
					debug.Logf("make %q: member step %s on %s node, detaching\n", p.String(), st, node.Type())
				}
				violate(ErrPrecondition, "member step %s of %s value", st, node.Type())
				node = Null()
			}
			node = node.AtField(st.Name())
		}
	}
	return node
}
