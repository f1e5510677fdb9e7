package eval

import (
	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/ident"
)

// evalMemberAccess reads target[index] / target.field: a List is
// indexed by a 0-based Number, a Map is indexed by a String key (spec.md's
// distillation fixes the AST shape in §3.4 but is silent on the read
// semantics; this mirrors setNested's descent rules so reading and
// writing a path agree on what it means to index into a value).
func evalMemberAccess(ctx *Context, e ast.MemberAccess) evalerr.Outcome {
	targetOut := Eval(ctx, e.Target)
	if targetOut.Failed() {
		return targetOut
	}
	indexOut := Eval(ctx, e.Index)
	if indexOut.Failed() {
		return indexOut
	}

	switch c := targetOut.Value.(type) {
	case ast.ListValue:
		n, err := ast.ToNumber(indexOut.Value)
		if err != nil {
			return evalerr.Fail(evalerr.Wrap(evalerr.KindToNumberError, "list index", err))
		}
		v, ok := c.Get(int(n.Value()))
		if !ok {
			return evalerr.Fail(evalerr.New(evalerr.KindTypeError, "list index out of range"))
		}
		return evalerr.Ok(v)
	case ast.MapValue:
		key, ok := indexOut.Value.(ast.StringValue)
		if !ok {
			return evalerr.Fail(evalerr.TypeError(ast.KindString, indexOut.Value.Kind()))
		}
		v, found := c.Get(key.Value())
		if !found {
			return evalerr.Fail(evalerr.New(evalerr.KindTypeError, "no such map key: "+ident.Quoted(key.Value())))
		}
		return evalerr.Ok(v)
	default:
		return evalerr.Fail(evalerr.TypeError(ast.KindList, c.Kind()))
	}
}
