package ast

import "github.com/zannabianca1997/dices-go/ident"

// Receiver is the left-hand side of a Set expression (spec §3.4): `_`
// discards, `Let(name)` binds in the current frame, and `Set{root,
// indices}` mutates an existing, possibly-nested, location.
type Receiver interface {
	Equal(Receiver) bool
	receiverNode()
}

// IgnoreReceiver is `_`: the assigned value is discarded, the expression
// evaluates to Null.
type IgnoreReceiver struct{}

func (IgnoreReceiver) receiverNode() {}
func (IgnoreReceiver) Equal(other Receiver) bool {
	_, ok := other.(IgnoreReceiver)
	return ok
}

// LetReceiver binds Name in the current scope frame, shadowing any outer
// binding of the same name.
type LetReceiver struct {
	Name ident.Ident
}

func (LetReceiver) receiverNode() {}
func (r LetReceiver) Equal(other Receiver) bool {
	o, ok := other.(LetReceiver)
	return ok && r.Name.Equal(o.Name)
}

// SetReceiver resolves Root in the scope chain, then descends through
// each of Indices (evaluated left to right) to the final mutable List or
// Map cell.
type SetReceiver struct {
	Root    ident.Ident
	Indices []Expression
}

func (SetReceiver) receiverNode() {}
func (r SetReceiver) Equal(other Receiver) bool {
	o, ok := other.(SetReceiver)
	if !ok || !r.Root.Equal(o.Root) || len(r.Indices) != len(o.Indices) {
		return false
	}
	for i, idx := range r.Indices {
		if !idx.Equal(o.Indices[i]) {
			return false
		}
	}
	return true
}
