package eval

import (
	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
)

// evalUnaryOp implements spec §4.3: `+x` is sugar for `0 + x`, `-x` is
// sugar for `x * -1`, and `d n` throws one die.
func evalUnaryOp(ctx *Context, e ast.UnaryOp) evalerr.Outcome {
	operand := Eval(ctx, e.Expr)
	if operand.Failed() {
		return operand
	}
	switch e.Op {
	case ast.OpPlus:
		v, err := ast.Add(ast.NewNumber(0), operand.Value)
		if err != nil {
			return wrapValueErr(err)
		}
		return evalerr.Ok(v)
	case ast.OpNeg:
		v, err := ast.Mul(operand.Value, ast.NewNumber(-1))
		if err != nil {
			return wrapValueErr(err)
		}
		return evalerr.Ok(v)
	case ast.OpDice:
		n, err := ast.ToNumber(operand.Value)
		if err != nil {
			return evalerr.Fail(evalerr.Wrap(evalerr.KindToNumberError, "dice face count", err))
		}
		if n.Value() <= 0 {
			return evalerr.Fail(evalerr.New(evalerr.KindFacesMustBePositive, "a die needs at least one face"))
		}
		return evalerr.Ok(ast.NewNumber(ctx.rollDie(n.Value())))
	default:
		return evalerr.Fail(evalerr.New(evalerr.KindTypeError, "unknown unary operator"))
	}
}

// evalBinaryOp dispatches the six pure arithmetic/join operators
// through package ast, and `^` (repeat) through evalRepeat since it
// alone needs to re-evaluate its lhs expression rather than operate on
// two already-evaluated values. A depth guard applies here rather than
// per-sub-operator, since BinaryOp is one of the two AST node kinds the
// spec calls out as needing a recursion guard (spec §5).
func evalBinaryOp(ctx *Context, e ast.BinaryOp) evalerr.Outcome {
	if !ctx.enterDepth() {
		return evalerr.Fail(evalerr.New(evalerr.KindRecursionLimit, "recursion limit exceeded"))
	}
	defer ctx.exitDepth()

	if e.Op == ast.OpRepeat {
		return evalRepeat(ctx, e)
	}

	lhs := Eval(ctx, e.Lhs)
	if lhs.Failed() {
		return lhs
	}
	rhs := Eval(ctx, e.Rhs)
	if rhs.Failed() {
		return rhs
	}

	var v ast.Value
	var err error
	switch e.Op {
	case ast.OpAdd:
		v, err = ast.Add(lhs.Value, rhs.Value)
	case ast.OpSub:
		v, err = ast.Sub(lhs.Value, rhs.Value)
	case ast.OpMul:
		v, err = ast.Mul(lhs.Value, rhs.Value)
	case ast.OpDiv:
		v, err = ast.Div(lhs.Value, rhs.Value)
	case ast.OpMod:
		v, err = ast.Mod(lhs.Value, rhs.Value)
	case ast.OpJoin:
		v, err = ast.Join(lhs.Value, rhs.Value)
	default:
		return evalerr.Fail(evalerr.New(evalerr.KindTypeError, "unknown binary operator"))
	}
	if err != nil {
		return wrapValueErr(err)
	}
	return evalerr.Ok(v)
}

// evalRepeat implements `a ^ n` (spec §4.4): the count `n` is resolved
// first, then `a` is re-evaluated once per repetition so dice rolls and
// intrinsic calls inside it produce independent results each time.
func evalRepeat(ctx *Context, e ast.BinaryOp) evalerr.Outcome {
	count := Eval(ctx, e.Rhs)
	if count.Failed() {
		return count
	}
	n, err := ast.ToNumber(count.Value)
	if err != nil {
		return evalerr.Fail(evalerr.Wrap(evalerr.KindToNumberError, "repeat count", err))
	}
	if n.Value() < 0 {
		return evalerr.Fail(evalerr.New(evalerr.KindNegativeRepeat, "repeat count must not be negative"))
	}
	out := make([]ast.Value, 0, n.Value())
	for i := int64(0); i < n.Value(); i++ {
		v := Eval(ctx, e.Lhs)
		if v.Failed() {
			return v
		}
		out = append(out, v.Value)
	}
	return evalerr.Ok(ast.NewList(out))
}
