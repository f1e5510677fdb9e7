package ast

import "github.com/zannabianca1997/dices-go/ident"

// ClosureValue is a callable bundling its parameter names, the
// environment captured by value at definition time, and its body
// expression (spec §3.2, §4.5). Capture-by-value means a closure never
// observes mutations to the defining scope after construction.
type ClosureValue struct {
	Params   []ident.Ident
	Captures MapValue
	Body     Expression
}

// NewClosure builds a ClosureValue.
func NewClosure(params []ident.Ident, captures MapValue, body Expression) ClosureValue {
	return ClosureValue{Params: params, Captures: captures, Body: body}
}

func (ClosureValue) Kind() Kind { return KindClosure }

func (c ClosureValue) String() string {
	s := "|"
	for i, p := range c.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + "| <closure>"
}

func (ClosureValue) Truthy() bool { return true }

// Equal is structural equality on (params, captures, body) per spec §9.
func (c ClosureValue) Equal(other Value) bool {
	o, ok := other.(ClosureValue)
	if !ok || len(c.Params) != len(o.Params) {
		return false
	}
	for i, p := range c.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	if !c.Captures.Equal(o.Captures) {
		return false
	}
	return c.Body.Equal(o.Body)
}
