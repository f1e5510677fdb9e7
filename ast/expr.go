package ast

import "github.com/zannabianca1997/dices-go/ident"

// BinOp identifies a binary operator (spec §4.4).
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpJoin // ~
	OpRepeat // ^
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpJoin:
		return "~"
	case OpRepeat:
		return "^"
	default:
		return "?"
	}
}

// UnOp identifies a unary operator (spec §4.3).
type UnOp int

const (
	OpPlus UnOp = iota
	OpNeg
	OpDice // unary `d`
)

func (op UnOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpNeg:
		return "-"
	case OpDice:
		return "d"
	default:
		return "?"
	}
}

// Expression is the tagged union of dices AST nodes (spec §3.4). Every
// concrete node type below implements it; the marker method keeps the
// union closed to this package.
type Expression interface {
	Equal(Expression) bool
	exprNode()
}

// Const wraps a literal Value.
type Const struct {
	Value Value
}

func (Const) exprNode() {}
func (e Const) Equal(other Expression) bool {
	o, ok := other.(Const)
	return ok && e.Value.Equal(o.Value)
}

// List is a list literal: each element expression is evaluated in order.
type List struct {
	Elements []Expression
}

func (List) exprNode() {}
func (e List) Equal(other Expression) bool {
	o, ok := other.(List)
	if !ok || len(o.Elements) != len(e.Elements) {
		return false
	}
	for i, el := range e.Elements {
		if !el.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// Map is a map literal.
type Map struct {
	Entries map[string]Expression
}

func (Map) exprNode() {}
func (e Map) Equal(other Expression) bool {
	o, ok := other.(Map)
	if !ok || len(o.Entries) != len(e.Entries) {
		return false
	}
	for k, v := range e.Entries {
		ov, ok := o.Entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Closure is a closure literal: |params| body.
type Closure struct {
	Params []ident.Ident
	Body   Expression
}

func (Closure) exprNode() {}
func (e Closure) Equal(other Expression) bool {
	o, ok := other.(Closure)
	if !ok || len(o.Params) != len(e.Params) {
		return false
	}
	for i, p := range e.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	return e.Body.Equal(o.Body)
}

// UnaryOp applies a unary operator.
type UnaryOp struct {
	Op   UnOp
	Expr Expression
}

func (UnaryOp) exprNode() {}
func (e UnaryOp) Equal(other Expression) bool {
	o, ok := other.(UnaryOp)
	return ok && e.Op == o.Op && e.Expr.Equal(o.Expr)
}

// BinaryOp applies a binary operator.
type BinaryOp struct {
	Op  BinOp
	Lhs Expression
	Rhs Expression
}

func (BinaryOp) exprNode() {}
func (e BinaryOp) Equal(other Expression) bool {
	o, ok := other.(BinaryOp)
	return ok && e.Op == o.Op && e.Lhs.Equal(o.Lhs) && e.Rhs.Equal(o.Rhs)
}

// Call invokes a callee (closure or intrinsic) with arguments.
type Call struct {
	Callee Expression
	Args   []Expression
}

func (Call) exprNode() {}
func (e Call) Equal(other Expression) bool {
	o, ok := other.(Call)
	if !ok || len(o.Args) != len(e.Args) || !e.Callee.Equal(o.Callee) {
		return false
	}
	for i, a := range e.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Scope is a non-empty sequence of expressions evaluated in a fresh
// frame; its value is the value of the last one (spec §3.4 invariant).
type Scope struct {
	Body []Expression
}

func (Scope) exprNode() {}
func (e Scope) Equal(other Expression) bool {
	o, ok := other.(Scope)
	if !ok || len(o.Body) != len(e.Body) {
		return false
	}
	for i, el := range e.Body {
		if !el.Equal(o.Body[i]) {
			return false
		}
	}
	return true
}

// Ref is a variable reference.
type Ref struct {
	Name ident.Ident
}

func (Ref) exprNode() {}
func (e Ref) Equal(other Expression) bool {
	o, ok := other.(Ref)
	return ok && e.Name.Equal(o.Name)
}

// Set assigns value to receiver.
type Set struct {
	Receiver Receiver
	Value    Expression
}

func (Set) exprNode() {}
func (e Set) Equal(other Expression) bool {
	o, ok := other.(Set)
	return ok && e.Receiver.Equal(o.Receiver) && e.Value.Equal(o.Value)
}

// MemberAccess reads a member of a list or map: target[index] / target.field.
type MemberAccess struct {
	Target Expression
	Index  Expression
}

func (MemberAccess) exprNode() {}
func (e MemberAccess) Equal(other Expression) bool {
	o, ok := other.(MemberAccess)
	return ok && e.Target.Equal(o.Target) && e.Index.Equal(o.Index)
}
