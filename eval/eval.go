// Package eval is the Solver: the tree-walking evaluator that drives an
// ast.Expression to a value against a Context, per spec §4.
package eval

import (
	"sort"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/ident"
)

// Eval dispatches on the concrete type of expr, mirroring the teacher's
// switch-on-node-type Eval (eval/eval.go) generalized from the MOO
// statement/expression grammar to the smaller, purely-expression dices
// AST.
func Eval(ctx *Context, expr ast.Expression) evalerr.Outcome {
	switch e := expr.(type) {
	case ast.Const:
		return evalerr.Ok(e.Value)
	case ast.List:
		return evalList(ctx, e)
	case ast.Map:
		return evalMap(ctx, e)
	case ast.Closure:
		return evalClosure(ctx, e)
	case ast.UnaryOp:
		return evalUnaryOp(ctx, e)
	case ast.BinaryOp:
		return evalBinaryOp(ctx, e)
	case ast.Call:
		return evalCall(ctx, e)
	case ast.Scope:
		return evalScope(ctx, e)
	case ast.Ref:
		return evalRef(ctx, e)
	case ast.Set:
		return evalSet(ctx, e)
	case ast.MemberAccess:
		return evalMemberAccess(ctx, e)
	default:
		return evalerr.Fail(evalerr.New(evalerr.KindTypeError, "unknown expression node"))
	}
}

func evalList(ctx *Context, e ast.List) evalerr.Outcome {
	out := make([]ast.Value, len(e.Elements))
	for i, el := range e.Elements {
		o := Eval(ctx, el)
		if o.Failed() {
			return o
		}
		out[i] = o.Value
	}
	return evalerr.Ok(ast.NewList(out))
}

// evalMap evaluates entries in sorted-key order: the AST carries them in
// a Go map with no ordering of its own, and sorted order is the one
// deterministic, reproducible choice, matching how ast.MapValue itself
// always iterates (spec §3.2).
func evalMap(ctx *Context, e ast.Map) evalerr.Outcome {
	keys := make([]string, 0, len(e.Entries))
	for k := range e.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ast.EmptyMap
	for _, k := range keys {
		o := Eval(ctx, e.Entries[k])
		if o.Failed() {
			return o
		}
		out = out.Set(k, o.Value)
	}
	return evalerr.Ok(out)
}

func evalScope(ctx *Context, e ast.Scope) evalerr.Outcome {
	if len(e.Body) == 0 {
		return evalerr.Fail(evalerr.New(evalerr.KindTypeError, "scope body must be non-empty"))
	}
	ctx.PushScope()
	defer ctx.PopScope()
	var last evalerr.Outcome
	for _, el := range e.Body {
		last = Eval(ctx, el)
		if last.Failed() {
			return last
		}
	}
	return last
}

func evalRef(ctx *Context, e ast.Ref) evalerr.Outcome {
	v, ok := ctx.Lookup(e.Name)
	if !ok {
		return evalerr.Fail(evalerr.New(evalerr.KindUnknownVariable, "unknown variable "+ident.Quoted(e.Name.String())))
	}
	return evalerr.Ok(v)
}

// wrapValueErr translates the local error types ast's pure value
// operators raise (they can't depend on evalerr, which itself depends
// on ast) into the right evalerr.Kind.
func wrapValueErr(err error) evalerr.Outcome {
	switch e := err.(type) {
	case *ast.DivisionByZeroError:
		return evalerr.Fail(evalerr.New(evalerr.KindDivisionByZero, e.Error()))
	case *ast.TypeMismatchError, *ast.LengthMismatchError:
		return evalerr.Fail(evalerr.New(evalerr.KindTypeError, e.Error()))
	case *ast.ToNumberError:
		return evalerr.Fail(evalerr.Wrap(evalerr.KindToNumberError, "coercion", e))
	default:
		return evalerr.Fail(evalerr.Wrap(evalerr.KindTypeError, "operator", err))
	}
}
