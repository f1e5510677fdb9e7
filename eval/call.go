package eval

import (
	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/ident"
	"github.com/zannabianca1997/dices-go/intrinsic"
)

// evalClosure builds a ClosureValue, capturing by value every free
// variable of body that currently resolves in the scope chain (spec
// §4.5). A free variable with no current binding is simply omitted from
// captures; referencing it from the closure body will then fail with
// UnknownVariable at call time, exactly as it would have at definition
// time.
func evalClosure(ctx *Context, e ast.Closure) evalerr.Outcome {
	bound := make(map[ident.Ident]bool, len(e.Params))
	for _, p := range e.Params {
		bound[p] = true
	}
	free := make(map[ident.Ident]struct{})
	collectFree(e.Body, bound, free)

	captures := ast.EmptyMap
	for name := range free {
		if v, ok := ctx.Lookup(name); ok {
			captures = captures.Set(name.String(), v)
		}
	}
	return evalerr.Ok(ast.NewClosure(e.Params, captures, e.Body))
}

// collectFree walks expr accumulating the names of Ref nodes not bound
// by an enclosing Closure's params, a Scope's preceding Let bindings, or
// the outer bound set passed in. It intentionally over-approximates
// nothing: every name it misses would otherwise have to resolve from the
// defining scope, so under-counting would silently drop a needed
// capture.
func collectFree(expr ast.Expression, bound map[ident.Ident]bool, free map[ident.Ident]struct{}) {
	switch e := expr.(type) {
	case ast.Const:
	case ast.List:
		for _, el := range e.Elements {
			collectFree(el, bound, free)
		}
	case ast.Map:
		for _, el := range e.Entries {
			collectFree(el, bound, free)
		}
	case ast.Closure:
		inner := copyBound(bound)
		for _, p := range e.Params {
			inner[p] = true
		}
		collectFree(e.Body, inner, free)
	case ast.UnaryOp:
		collectFree(e.Expr, bound, free)
	case ast.BinaryOp:
		collectFree(e.Lhs, bound, free)
		collectFree(e.Rhs, bound, free)
	case ast.Call:
		collectFree(e.Callee, bound, free)
		for _, a := range e.Args {
			collectFree(a, bound, free)
		}
	case ast.Scope:
		inner := copyBound(bound)
		for _, el := range e.Body {
			collectFree(el, inner, free)
			if set, ok := el.(ast.Set); ok {
				if lr, ok := set.Receiver.(ast.LetReceiver); ok {
					inner[lr.Name] = true
				}
			}
		}
	case ast.Ref:
		if !bound[e.Name] {
			free[e.Name] = struct{}{}
		}
	case ast.Set:
		switch r := e.Receiver.(type) {
		case ast.SetReceiver:
			if !bound[r.Root] {
				free[r.Root] = struct{}{}
			}
			for _, idx := range r.Indices {
				collectFree(idx, bound, free)
			}
		}
		collectFree(e.Value, bound, free)
	case ast.MemberAccess:
		collectFree(e.Target, bound, free)
		collectFree(e.Index, bound, free)
	}
}

func copyBound(bound map[ident.Ident]bool) map[ident.Ident]bool {
	out := make(map[ident.Ident]bool, len(bound))
	for k, v := range bound {
		out[k] = v
	}
	return out
}

// evalCall implements spec §4.5: evaluate the callee, then the
// arguments left to right; a Closure gets a fresh, isolated frame seeded
// with its captures and bound parameters, an Intrinsic dispatches to
// package intrinsic, anything else is NotCallable. Like BinaryOp, Call
// is one of the two recursion points the spec asks to guard explicitly.
func evalCall(ctx *Context, e ast.Call) evalerr.Outcome {
	if !ctx.enterDepth() {
		return evalerr.Fail(evalerr.New(evalerr.KindRecursionLimit, "recursion limit exceeded"))
	}
	defer ctx.exitDepth()

	calleeOut := Eval(ctx, e.Callee)
	if calleeOut.Failed() {
		return calleeOut
	}
	args := make([]ast.Value, len(e.Args))
	for i, a := range e.Args {
		o := Eval(ctx, a)
		if o.Failed() {
			return o
		}
		args[i] = o.Value
	}

	switch callee := calleeOut.Value.(type) {
	case ast.ClosureValue:
		return callClosure(ctx, callee, args)
	case ast.IntrinsicValue:
		return callIntrinsic(ctx, callee, args)
	default:
		return evalerr.Fail(evalerr.NotCallable(callee.Kind()))
	}
}

func callClosure(ctx *Context, callee ast.ClosureValue, args []ast.Value) evalerr.Outcome {
	if len(callee.Params) != len(args) {
		return evalerr.Fail(evalerr.ArityMismatch(len(callee.Params), len(args)))
	}
	frame := newFrame(nil)
	callee.Captures.Each(func(key string, v ast.Value) {
		frame.vars[ident.MustNew(key)] = v
	})
	for i, p := range callee.Params {
		frame.vars[p] = args[i]
	}

	saved := ctx.top
	ctx.top = frame
	out := Eval(ctx, callee.Body)
	ctx.top = saved
	return out
}

func callIntrinsic(ctx *Context, callee ast.IntrinsicValue, args []ast.Value) evalerr.Outcome {
	handler, ok := ctx.Intrinsics.FromName(callee.Name)
	if !ok {
		return evalerr.Fail(evalerr.New(evalerr.KindIntrinsicError, "no such intrinsic: "+ident.Quoted(callee.Name)))
	}
	return handler.Call(intrinsic.State{Host: ctx.Host, ConstEval: ctx.ConstEval}, args)
}
