package conformance

import (
	"fmt"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/ident"
)

func litInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected an integer literal, got %T (%v)", v, v)
	}
}

func unOpFromSymbol(sym string) (ast.UnOp, error) {
	switch sym {
	case "+":
		return ast.OpPlus, nil
	case "-":
		return ast.OpNeg, nil
	case "d":
		return ast.OpDice, nil
	default:
		return 0, fmt.Errorf("unknown unary operator %q", sym)
	}
}

func binOpFromSymbol(sym string) (ast.BinOp, error) {
	switch sym {
	case "+":
		return ast.OpAdd, nil
	case "-":
		return ast.OpSub, nil
	case "*":
		return ast.OpMul, nil
	case "/":
		return ast.OpDiv, nil
	case "%":
		return ast.OpMod, nil
	case "~":
		return ast.OpJoin, nil
	case "^":
		return ast.OpRepeat, nil
	default:
		return 0, fmt.Errorf("unknown binary operator %q", sym)
	}
}

// Build converts a fixture Node into the ast.Expression it describes.
func Build(n Node) (ast.Expression, error) {
	switch n.Kind {
	case "null":
		return ast.Const{Value: ast.Null}, nil
	case "bool":
		b, ok := n.Lit.(bool)
		if !ok {
			return nil, fmt.Errorf("bool node needs a bool lit, got %T", n.Lit)
		}
		return ast.Const{Value: ast.NewBool(b)}, nil
	case "number":
		i, err := litInt64(n.Lit)
		if err != nil {
			return nil, err
		}
		return ast.Const{Value: ast.NewNumber(i)}, nil
	case "string":
		s, ok := n.Lit.(string)
		if !ok {
			return nil, fmt.Errorf("string node needs a string lit, got %T", n.Lit)
		}
		return ast.Const{Value: ast.NewString(s)}, nil
	case "list":
		elems := make([]ast.Expression, len(n.Elements))
		for i, el := range n.Elements {
			built, err := Build(el)
			if err != nil {
				return nil, err
			}
			elems[i] = built
		}
		return ast.List{Elements: elems}, nil
	case "map":
		entries := make(map[string]ast.Expression, len(n.Entries))
		for k, v := range n.Entries {
			built, err := Build(v)
			if err != nil {
				return nil, err
			}
			entries[k] = built
		}
		return ast.Map{Entries: entries}, nil
	case "closure":
		if n.Body == nil {
			return nil, fmt.Errorf("closure node needs a body")
		}
		params := make([]ident.Ident, len(n.Params))
		for i, p := range n.Params {
			id, err := ident.New(p)
			if err != nil {
				return nil, err
			}
			params[i] = id
		}
		body, err := Build(*n.Body)
		if err != nil {
			return nil, err
		}
		return ast.Closure{Params: params, Body: body}, nil
	case "unop":
		if n.Operand == nil {
			return nil, fmt.Errorf("unop node needs an operand")
		}
		op, err := unOpFromSymbol(n.Op)
		if err != nil {
			return nil, err
		}
		operand, err := Build(*n.Operand)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: op, Expr: operand}, nil
	case "binop":
		if n.Lhs == nil || n.Rhs == nil {
			return nil, fmt.Errorf("binop node needs lhs and rhs")
		}
		op, err := binOpFromSymbol(n.Op)
		if err != nil {
			return nil, err
		}
		lhs, err := Build(*n.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := Build(*n.Rhs)
		if err != nil {
			return nil, err
		}
		return ast.BinaryOp{Op: op, Lhs: lhs, Rhs: rhs}, nil
	case "call":
		if n.Callee == nil {
			return nil, fmt.Errorf("call node needs a callee")
		}
		callee, err := Build(*n.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expression, len(n.Args))
		for i, a := range n.Args {
			built, err := Build(a)
			if err != nil {
				return nil, err
			}
			args[i] = built
		}
		return ast.Call{Callee: callee, Args: args}, nil
	case "scope":
		items := make([]ast.Expression, len(n.Items))
		for i, it := range n.Items {
			built, err := Build(it)
			if err != nil {
				return nil, err
			}
			items[i] = built
		}
		return ast.Scope{Body: items}, nil
	case "ref":
		id, err := ident.New(n.Name)
		if err != nil {
			return nil, err
		}
		return ast.Ref{Name: id}, nil
	case "intrinsic":
		if n.Name == "" {
			return nil, fmt.Errorf("intrinsic node needs a name")
		}
		return ast.Const{Value: ast.NewIntrinsic(n.Name)}, nil
	case "let":
		if n.Value == nil {
			return nil, fmt.Errorf("let node needs a value")
		}
		id, err := ident.New(n.Name)
		if err != nil {
			return nil, err
		}
		val, err := Build(*n.Value)
		if err != nil {
			return nil, err
		}
		return ast.Set{Receiver: ast.LetReceiver{Name: id}, Value: val}, nil
	case "ignore":
		if n.Value == nil {
			return nil, fmt.Errorf("ignore node needs a value")
		}
		val, err := Build(*n.Value)
		if err != nil {
			return nil, err
		}
		return ast.Set{Receiver: ast.IgnoreReceiver{}, Value: val}, nil
	case "set":
		if n.Value == nil {
			return nil, fmt.Errorf("set node needs a value")
		}
		id, err := ident.New(n.Name)
		if err != nil {
			return nil, err
		}
		indices := make([]ast.Expression, len(n.Indices))
		for i, idx := range n.Indices {
			built, err := Build(idx)
			if err != nil {
				return nil, err
			}
			indices[i] = built
		}
		val, err := Build(*n.Value)
		if err != nil {
			return nil, err
		}
		return ast.Set{Receiver: ast.SetReceiver{Root: id, Indices: indices}, Value: val}, nil
	case "member":
		if n.Target == nil || n.Index == nil {
			return nil, fmt.Errorf("member node needs target and index")
		}
		target, err := Build(*n.Target)
		if err != nil {
			return nil, err
		}
		index, err := Build(*n.Index)
		if err != nil {
			return nil, err
		}
		return ast.MemberAccess{Target: target, Index: index}, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}
