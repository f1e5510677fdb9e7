package eval

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/ident"
	"github.com/zannabianca1997/dices-go/intrinsic"
	"github.com/zannabianca1997/dices-go/stdlib"
)

// maxDepth bounds the two deepest-recursing evaluation paths (BinaryOp,
// Call) so a pathological expression surfaces RecursionLimit instead of
// overflowing the Go stack (spec §5).
const maxDepth = 4096

// frame is one scope frame: a mapping Ident -> Value, parent-linked
// (spec §3.6). Grounded on the teacher's Environment (eval/environment.go),
// generalized from string keys to validated ident.Ident keys.
type frame struct {
	vars   map[ident.Ident]ast.Value
	parent *frame
}

func newFrame(parent *frame) *frame {
	return &frame{vars: make(map[ident.Ident]ast.Value), parent: parent}
}

func (f *frame) get(name ident.Ident) (ast.Value, bool) {
	for c := f; c != nil; c = c.parent {
		if v, ok := c.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (f *frame) setExisting(name ident.Ident, v ast.Value) bool {
	for c := f; c != nil; c = c.parent {
		if _, ok := c.vars[name]; ok {
			c.vars[name] = v
			return true
		}
	}
	return false
}

// Context is the evaluation context of spec §3.6: a stack of scope
// frames, the RNG backing dice rolls, and the host state reference
// passed by value to injected intrinsics. One Context is exclusive to a
// single synchronous evaluation (spec §5); a host running several
// evaluations concurrently gives each its own Context, own RNG, and own
// host-state reference.
type Context struct {
	top        *frame
	Host       any
	Intrinsics *intrinsic.Registry
	rng        *rand.Rand
	// ID correlates recursion-limit/quit-interrupt diagnostics back to
	// the context that raised them when a host juggles several
	// concurrent evaluations (spec §5).
	ID uuid.UUID

	// ConstEval marks a context that is not permitted to perform
	// callable-driven I/O; intrinsics that would otherwise reach the
	// host raise CannotEvalInConst under it (spec §5).
	ConstEval bool

	depth int
}

// NewContext builds a Context seeded with the given RNG seed, host
// state, and intrinsic registry. The root scope frame starts empty;
// callers that want a prelude (package stdlib) should evaluate it into
// the root frame before running user code.
func NewContext(seed uint64, host any, registry *intrinsic.Registry) *Context {
	return &Context{
		top:        newFrame(nil),
		Host:       host,
		Intrinsics: registry,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ID:         uuid.New(),
	}
}

// NewRootContext builds a Context exactly like NewContext, then binds
// the standard library (package stdlib) into its root frame under its
// named paths ("intrisics", "filters", "prelude" — spec §2 item 7),
// mirroring the construction sequence of the original's
// dices-engine/examples/repl.rs: build std intrinsics, build prelude
// closures, then enter the root Scope with both already bound. A Context
// built with the bare NewContext has no stdlib bindings at all; use
// NewRootContext whenever user code is expected to resolve the standard
// library by name.
func NewRootContext(seed uint64, host any, registry *intrinsic.Registry) *Context {
	ctx := NewContext(seed, host, registry)
	stdlib.Std(registry).Each(func(key string, v ast.Value) {
		ctx.Let(ident.MustNew(key), v)
	})
	return ctx
}

// PushScope extends the frame stack (spec §4.2: "a new scope frame is
// pushed for every Scope expression, for every function call").
func (c *Context) PushScope() { c.top = newFrame(c.top) }

// PopScope truncates the frame stack. Safe to call unconditionally on
// every exit path, including error propagation, because the root frame
// is never popped.
func (c *Context) PopScope() {
	if c.top.parent != nil {
		c.top = c.top.parent
	}
}

// Lookup walks the scope chain from innermost outward (spec §4.2).
func (c *Context) Lookup(name ident.Ident) (ast.Value, bool) {
	return c.top.get(name)
}

// Let binds name in the current (innermost) frame, shadowing any outer
// binding (spec §4.2).
func (c *Context) Let(name ident.Ident, v ast.Value) {
	c.top.vars[name] = v
}

// SetExisting walks the scope chain looking for an existing binding of
// name and, if found, overwrites it in place. Reports whether a binding
// was found.
func (c *Context) SetExisting(name ident.Ident, v ast.Value) bool {
	return c.top.setExisting(name, v)
}

// enterDepth increments the recursion guard and reports whether the
// call is still within budget; pair with a deferred call to exitDepth.
func (c *Context) enterDepth() bool {
	c.depth++
	return c.depth <= maxDepth
}

func (c *Context) exitDepth() { c.depth-- }

// rollDie produces a uniformly random integer in [1, faces] via the
// context's RNG (spec §4.3).
func (c *Context) rollDie(faces int64) int64 {
	return c.rng.Int64N(faces) + 1
}
