// Package ast holds the value model and the abstract syntax tree of the
// dices language together, in one package: a Closure value embeds an
// Expression body and an Expression's Const node embeds a Value, so the
// two are mutually recursive and cannot live in separate packages without
// an import cycle. The upstream Rust implementation this was distilled
// from makes the same call — its dices-ast crate holds both a value/ and
// an expression/ module for exactly this reason.
package ast

// Kind identifies which alternative of the Value tagged union a Value
// holds. Order matches the total order over values (spec §3.2): Null <
// Bool < Number < String < List < Map < Closure < Intrinsic.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
	KindClosure
	KindIntrinsic
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindClosure:
		return "closure"
	case KindIntrinsic:
		return "intrinsic"
	default:
		return "unknown"
	}
}

// Value is the interface every dices runtime value implements.
type Value interface {
	Kind() Kind
	String() string        // dices literal representation
	Equal(other Value) bool // structural equality
	Truthy() bool           // dices truthiness
}
