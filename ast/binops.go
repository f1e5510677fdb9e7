package ast

import "fmt"

// TypeMismatchError reports operands whose kinds cannot be combined by a
// binary operator.
type TypeMismatchError struct {
	Op    BinOp
	Left  Kind
	Right Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot apply %s to %s and %s", e.Op, e.Left, e.Right)
}

// DivisionByZeroError reports an integer division or remainder by zero.
type DivisionByZeroError struct{}

func (*DivisionByZeroError) Error() string { return "division by zero" }

// LengthMismatchError reports elementwise list operands of different
// lengths where the operator requires equal length (spec §4.4's `+`).
type LengthMismatchError struct {
	Op          BinOp
	Left, Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s requires equal-length lists, got %d and %d", e.Op, e.Left, e.Right)
}

func mismatch(op BinOp, a, b Value) error {
	return &TypeMismatchError{Op: op, Left: a.Kind(), Right: b.Kind()}
}

// Add implements spec §4.4's `+`: numeric addition, elementwise on
// equal-length lists, key-union on maps (shared keys add, unique keys
// pass through unchanged), and type-mixing promotion via ToNumber.
func Add(a, b Value) (Value, error) {
	if al, aok := a.(ListValue); aok {
		if bl, bok := b.(ListValue); bok {
			return addLists(al, bl)
		}
	}
	if am, aok := a.(MapValue); aok {
		if bm, bok := b.(MapValue); bok {
			return addMaps(am, bm)
		}
	}
	an, aerr := ToNumber(a)
	if aerr != nil {
		return nil, mismatch(OpAdd, a, b)
	}
	bn, berr := ToNumber(b)
	if berr != nil {
		return nil, mismatch(OpAdd, a, b)
	}
	return NewNumber(an.val + bn.val), nil
}

func addLists(a, b ListValue) (Value, error) {
	if len(a.elems) != len(b.elems) {
		return nil, &LengthMismatchError{Op: OpAdd, Left: len(a.elems), Right: len(b.elems)}
	}
	out := make([]Value, len(a.elems))
	for i := range a.elems {
		v, err := Add(a.elems[i], b.elems[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewList(out), nil
}

func addMaps(a, b MapValue) (Value, error) {
	out := a
	for _, e := range b.entries {
		if av, ok := a.Get(e.key); ok {
			v, err := Add(av, e.val)
			if err != nil {
				return nil, err
			}
			out = out.Set(e.key, v)
		} else {
			out = out.Set(e.key, e.val)
		}
	}
	return out, nil
}

// Sub implements spec §4.4's `-`: sugar for a + (-b), where -b is Mul(b,
// -1) per the unary-minus definition in spec §4.3.
func Sub(a, b Value) (Value, error) {
	negB, err := Mul(b, NewNumber(-1))
	if err != nil {
		return nil, err
	}
	return Add(a, negB)
}

// Mul implements spec §4.4's `*`. Number*Number multiplies; a scalar
// (including a singleton list/map, per spec "List x List when one list
// has length 1 distributes the scalar element") distributes over the
// other operand's elements; Closure/Intrinsic operands are always
// forbidden.
func Mul(a, b Value) (Value, error) {
	if a.Kind() == KindClosure || b.Kind() == KindClosure ||
		a.Kind() == KindIntrinsic || b.Kind() == KindIntrinsic {
		return nil, mismatch(OpMul, a, b)
	}
	if al, aok := a.(ListValue); aok {
		if bl, bok := b.(ListValue); bok {
			return mulLists(al, bl)
		}
		return distributeList(al, b, OpMul, Mul)
	}
	if bl, bok := b.(ListValue); bok {
		return distributeListRight(a, bl, OpMul, Mul)
	}
	if am, aok := a.(MapValue); aok {
		if bm, bok := b.(MapValue); bok {
			return mulMaps(am, bm)
		}
		return distributeMap(am, b, Mul)
	}
	if bm, bok := b.(MapValue); bok {
		return distributeMapRight(a, bm, Mul)
	}
	an, aerr := ToNumber(a)
	bn, berr := ToNumber(b)
	if aerr != nil || berr != nil {
		return nil, mismatch(OpMul, a, b)
	}
	return NewNumber(an.val * bn.val), nil
}

func distributeList(a ListValue, scalar Value, op BinOp, f func(Value, Value) (Value, error)) (Value, error) {
	out := make([]Value, len(a.elems))
	for i, e := range a.elems {
		v, err := f(e, scalar)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewList(out), nil
}

func distributeListRight(scalar Value, b ListValue, op BinOp, f func(Value, Value) (Value, error)) (Value, error) {
	out := make([]Value, len(b.elems))
	for i, e := range b.elems {
		v, err := f(scalar, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewList(out), nil
}

func mulLists(a, b ListValue) (Value, error) {
	switch {
	case len(a.elems) == 1:
		return distributeListRight(a.elems[0], b, OpMul, Mul)
	case len(b.elems) == 1:
		return distributeList(a, b.elems[0], OpMul, Mul)
	default:
		return nil, &LengthMismatchError{Op: OpMul, Left: len(a.elems), Right: len(b.elems)}
	}
}

func distributeMap(a MapValue, scalar Value, f func(Value, Value) (Value, error)) (Value, error) {
	out := EmptyMap
	for _, e := range a.entries {
		v, err := f(e.val, scalar)
		if err != nil {
			return nil, err
		}
		out = out.Set(e.key, v)
	}
	return out, nil
}

func distributeMapRight(scalar Value, b MapValue, f func(Value, Value) (Value, error)) (Value, error) {
	out := EmptyMap
	for _, e := range b.entries {
		v, err := f(scalar, e.val)
		if err != nil {
			return nil, err
		}
		out = out.Set(e.key, v)
	}
	return out, nil
}

func mulMaps(a, b MapValue) (Value, error) {
	if len(a.entries) == 1 {
		return distributeMapRight(a.entries[0].val, b, Mul)
	}
	if len(b.entries) == 1 {
		return distributeMap(a, b.entries[0].val, Mul)
	}
	out := a
	for _, e := range b.entries {
		if av, ok := a.Get(e.key); ok {
			v, err := Mul(av, e.val)
			if err != nil {
				return nil, err
			}
			out = out.Set(e.key, v)
		} else {
			out = out.Set(e.key, e.val)
		}
	}
	return out, nil
}

// Div and Mod implement spec §4.4's `/` and `%`: integer division and
// remainder, truncating toward zero, distributing like `*`.
func Div(a, b Value) (Value, error) { return intOp(OpDiv, a, b, scalarDiv) }
func Mod(a, b Value) (Value, error) { return intOp(OpMod, a, b, scalarMod) }

func scalarDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{}
	}
	return a / b, nil
}

func scalarMod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{}
	}
	return a % b, nil
}

// intMaps key-unions two non-singleton maps under f (/ or %), matching
// mulMaps's distribution for `*`: shared keys combine via f, unique keys
// from either side pass through unchanged (spec §4.4: `/` and `%`
// "distribute like `*`").
func intMaps(a, b MapValue, f func(Value, Value) (Value, error)) (Value, error) {
	out := a
	for _, e := range b.entries {
		if av, ok := a.Get(e.key); ok {
			v, err := f(av, e.val)
			if err != nil {
				return nil, err
			}
			out = out.Set(e.key, v)
		} else {
			out = out.Set(e.key, e.val)
		}
	}
	return out, nil
}

func intOp(op BinOp, a, b Value, scalar func(int64, int64) (int64, error)) (Value, error) {
	f := func(x, y Value) (Value, error) {
		return intOp(op, x, y, scalar)
	}
	if al, aok := a.(ListValue); aok {
		if bl, bok := b.(ListValue); bok {
			switch {
			case len(al.elems) == 1:
				return distributeListRight(al.elems[0], bl, op, f)
			case len(bl.elems) == 1:
				return distributeList(al, bl.elems[0], op, f)
			default:
				return nil, &LengthMismatchError{Op: op, Left: len(al.elems), Right: len(bl.elems)}
			}
		}
		return distributeList(al, b, op, f)
	}
	if bl, bok := b.(ListValue); bok {
		return distributeListRight(a, bl, op, f)
	}
	if am, aok := a.(MapValue); aok {
		if bm, bok := b.(MapValue); bok {
			if len(am.entries) == 1 {
				return distributeMapRight(am.entries[0].val, bm, f)
			}
			if len(bm.entries) == 1 {
				return distributeMap(am, bm.entries[0].val, f)
			}
			return intMaps(am, bm, f)
		}
		return distributeMap(am, b, f)
	}
	if bm, bok := b.(MapValue); bok {
		return distributeMapRight(a, bm, f)
	}
	an, aerr := ToNumber(a)
	bn, berr := ToNumber(b)
	if aerr != nil || berr != nil {
		return nil, mismatch(op, a, b)
	}
	r, err := scalar(an.val, bn.val)
	if err != nil {
		return nil, err
	}
	return NewNumber(r), nil
}

// Join implements spec §4.4's `~`: list concatenation, map merge (rhs
// wins on key collision), or string concatenation.
func Join(a, b Value) (Value, error) {
	switch av := a.(type) {
	case ListValue:
		bv, ok := b.(ListValue)
		if !ok {
			return nil, mismatch(OpJoin, a, b)
		}
		out := make([]Value, 0, len(av.elems)+len(bv.elems))
		out = append(out, av.elems...)
		out = append(out, bv.elems...)
		return NewList(out), nil
	case MapValue:
		bv, ok := b.(MapValue)
		if !ok {
			return nil, mismatch(OpJoin, a, b)
		}
		out := av
		for _, e := range bv.entries {
			out = out.Set(e.key, e.val)
		}
		return out, nil
	case StringValue:
		bv, ok := b.(StringValue)
		if !ok {
			return nil, mismatch(OpJoin, a, b)
		}
		return NewString(av.val + bv.val), nil
	default:
		return nil, mismatch(OpJoin, a, b)
	}
}
