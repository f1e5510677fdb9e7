package eval

import (
	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/ident"
)

// evalSet implements spec §4.2: `_` discards and yields Null, `let`
// binds in the current frame, and a plain assignment resolves an
// existing binding (optionally descending through indices) and mutates
// it in place.
func evalSet(ctx *Context, e ast.Set) evalerr.Outcome {
	valOut := Eval(ctx, e.Value)
	if valOut.Failed() {
		return valOut
	}
	switch r := e.Receiver.(type) {
	case ast.IgnoreReceiver:
		return evalerr.Ok(ast.Null)
	case ast.LetReceiver:
		ctx.Let(r.Name, valOut.Value)
		return evalerr.Ok(valOut.Value)
	case ast.SetReceiver:
		return evalSetReceiver(ctx, r, valOut.Value)
	default:
		return evalerr.Fail(evalerr.New(evalerr.KindNotAssignable, "unknown receiver"))
	}
}

func evalSetReceiver(ctx *Context, r ast.SetReceiver, newVal ast.Value) evalerr.Outcome {
	root, ok := ctx.Lookup(r.Root)
	if !ok {
		return evalerr.Fail(evalerr.New(evalerr.KindUnknownVariable, "unknown variable "+ident.Quoted(r.Root.String())))
	}
	if len(r.Indices) == 0 {
		ctx.SetExisting(r.Root, newVal)
		return evalerr.Ok(newVal)
	}

	indices := make([]ast.Value, len(r.Indices))
	for i, idxExpr := range r.Indices {
		o := Eval(ctx, idxExpr)
		if o.Failed() {
			return o
		}
		indices[i] = o.Value
	}

	updated, ferr := setNested(root, indices, newVal)
	if ferr != nil {
		return evalerr.Fail(ferr)
	}
	ctx.SetExisting(r.Root, updated)
	return evalerr.Ok(newVal)
}

// setNested descends through indices into container, replacing the
// value at the end of the path with newVal and rebuilding every List or
// Map cell along the way (spec §4.2: "the final location must be a
// mutable cell of a List or Map").
func setNested(container ast.Value, indices []ast.Value, newVal ast.Value) (ast.Value, *evalerr.Error) {
	if len(indices) == 0 {
		return newVal, nil
	}
	idx := indices[0]
	switch c := container.(type) {
	case ast.ListValue:
		n, err := ast.ToNumber(idx)
		if err != nil {
			return nil, evalerr.Wrap(evalerr.KindToNumberError, "list index", err)
		}
		elem, ok := c.Get(int(n.Value()))
		if !ok {
			return nil, evalerr.New(evalerr.KindNotAssignable, "list index out of range")
		}
		newElem, ferr := setNested(elem, indices[1:], newVal)
		if ferr != nil {
			return nil, ferr
		}
		out, _ := c.Set(int(n.Value()), newElem)
		return out, nil
	case ast.MapValue:
		key, ok := idx.(ast.StringValue)
		if !ok {
			return nil, evalerr.TypeError(ast.KindString, idx.Kind())
		}
		base := ast.Value(ast.Null)
		if elem, found := c.Get(key.Value()); found {
			base = elem
		}
		newElem, ferr := setNested(base, indices[1:], newVal)
		if ferr != nil {
			return nil, ferr
		}
		return c.Set(key.Value(), newElem), nil
	default:
		return nil, evalerr.New(evalerr.KindNotAssignable, "cannot index into a "+container.Kind().String())
	}
}
