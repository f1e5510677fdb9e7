// Package intrinsic implements the dices intrinsic mechanism (spec §4.6):
// the fixed core intrinsic table (quit, print, help, the dice filters,
// sum) plus the closed-enumeration contract a host uses to inject its
// own named callables.
package intrinsic

import (
	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
)

// Injected is the trait/interface the spec's redesign notes ask for: a
// closed enumeration of host callables with name/lookup/dispatch,
// grounded on the teacher's name -> id -> func Registry pattern
// (builtins/registry.go), generalized from string-keyed functions to an
// interface so a host can carry per-callable state.
type Injected interface {
	// Name is the identifier this callable is referenced by from
	// Value.Intrinsic and from stdlib path lookups.
	Name() string
	// Call invokes the callable against the calling context's State;
	// core intrinsics that need host services (print, help) expect
	// state.Host to implement Host, and quit/print/help all honor
	// state.ConstEval (spec §5).
	Call(state State, args []ast.Value) evalerr.Outcome
}

// State is the slice of eval.Context an intrinsic call can see: the
// host-supplied value a host-backed intrinsic dispatches against, and
// whether the calling context is const-evaluating (spec §5: a context
// that may not perform callable-driven I/O). Kept as its own type
// rather than passing *eval.Context directly because eval already
// imports intrinsic; intrinsic cannot import eval back.
type State struct {
	Host      any
	ConstEval bool
}

// Host is the subset of host services the core intrinsics (print, help)
// require. A host embedding the engine implements it and passes it as
// the state value of eval.Context.
type Host interface {
	// Log appends values to the host's log sink; backs `print`.
	Log(values []ast.Value)
	// HelpTopic looks up a manual page by name; backs `help(topic)`.
	HelpTopic(name string) (string, bool)
	// HelpTopics lists every topic the host can serve; backs the
	// zero-argument form of `help()` (spec.md's distillation dropped
	// this form's exact return shape, so the topic list is what gets
	// returned, as a List of String topic names).
	HelpTopics() []string
}

// Registry resolves intrinsic names to dispatchable Injected values,
// combining the fixed core table with whatever the host injects. Named
// after, and structured like, the teacher's Registry (builtins/registry.go)
// but keyed purely by name: dices has no bytecode that would benefit
// from a second integer-indexed table.
type Registry struct {
	byName map[string]Injected
	order  []string
}

// NewRegistry builds a Registry seeded with the core intrinsics (spec
// §4.6: quit, print, help, kh, kl, rh, rl, sum) plus the given injected
// callables. A name collision between an injected callable and a core
// one is resolved in the injected callable's favor, mirroring the
// teacher's last-registration-wins Register.
func NewRegistry(injected []Injected) *Registry {
	r := &Registry{byName: make(map[string]Injected)}
	for _, c := range coreIntrinsics() {
		r.add(c)
	}
	for _, c := range injected {
		r.add(c)
	}
	return r
}

func (r *Registry) add(c Injected) {
	if _, exists := r.byName[c.Name()]; !exists {
		r.order = append(r.order, c.Name())
	}
	r.byName[c.Name()] = c
}

// FromName looks up an intrinsic by name.
func (r *Registry) FromName(name string) (Injected, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// All returns every registered intrinsic in registration order.
func (r *Registry) All() []Injected {
	out := make([]Injected, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}
