package conformance

import (
	"fmt"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/eval"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/internal/host"
	"github.com/zannabianca1997/dices-go/intrinsic"
)

// defaultSeed is the RNG seed spec §8's concrete scenario table fixes
// ("seed a fixed RNG with 42").
const defaultSeed uint64 = 42

// Result is the outcome of running one TestCase against its Expectation.
type Result struct {
	Case   TestCase
	Passed bool
	Detail string
}

// Run builds the case's expression tree, evaluates it against a fresh
// Context seeded per spec §8, and checks the result against Expectation.
func Run(tc TestCase) Result {
	expr, err := Build(tc.Expr)
	if err != nil {
		return Result{Case: tc, Passed: false, Detail: fmt.Sprintf("building expression: %v", err)}
	}

	seed := defaultSeed
	if tc.Seed != nil {
		seed = *tc.Seed
	}
	reg := intrinsic.NewRegistry(nil)
	hostState := host.New(nil)
	ctx := eval.NewContext(seed, hostState, reg)

	out := eval.Eval(ctx, expr)
	return checkExpectation(tc, out)
}

func checkExpectation(tc TestCase, out evalerr.Outcome) Result {
	exp := tc.Expect
	switch {
	case exp.Value != nil:
		if out.Failed() {
			return fail(tc, "expected a value, got failure: %v", outcomeDetail(out))
		}
		wantExpr, err := Build(*exp.Value)
		if err != nil {
			return fail(tc, "building expected value: %v", err)
		}
		want := evalLiteral(wantExpr)
		if !out.Value.Equal(want) {
			return fail(tc, "got %s, want %s", out.Value, want)
		}
		return pass(tc)

	case exp.ListEachInRange != nil:
		if out.Failed() {
			return fail(tc, "expected a list, got failure: %v", outcomeDetail(out))
		}
		list, ok := out.Value.(ast.ListValue)
		if !ok {
			return fail(tc, "expected a List, got %s", out.Value.Kind())
		}
		for _, e := range list.Elements() {
			n, ok := e.(ast.NumberValue)
			if !ok {
				return fail(tc, "expected every element to be a Number, got %s", e.Kind())
			}
			if n.Value() < exp.ListEachInRange.Min || n.Value() > exp.ListEachInRange.Max {
				return fail(tc, "element %d out of range [%d,%d]", n.Value(), exp.ListEachInRange.Min, exp.ListEachInRange.Max)
			}
		}
		return pass(tc)

	case exp.ErrorKind != "":
		if !out.Failed() || out.Err == nil {
			return fail(tc, "expected error kind %s, got success or interrupt", exp.ErrorKind)
		}
		if out.Err.Kind.String() != exp.ErrorKind {
			return fail(tc, "expected error kind %s, got %s", exp.ErrorKind, out.Err.Kind)
		}
		return pass(tc)

	case exp.Interrupt != nil:
		if !out.Failed() || out.Interrupt == nil {
			return fail(tc, "expected a %s interrupt, got success or error", exp.Interrupt.Kind)
		}
		wantKind := evalerr.InterruptQuitted
		if exp.Interrupt.Kind == "cannot_eval_in_const" {
			wantKind = evalerr.InterruptCannotEvalInConst
		}
		if out.Interrupt.Kind != wantKind {
			return fail(tc, "expected interrupt kind %s, got %v", exp.Interrupt.Kind, out.Interrupt.Kind)
		}
		if exp.Interrupt.Values != nil {
			if len(out.Interrupt.Values) != len(exp.Interrupt.Values) {
				return fail(tc, "interrupt carried %d values, want %d", len(out.Interrupt.Values), len(exp.Interrupt.Values))
			}
			for i, wantNode := range exp.Interrupt.Values {
				wantExpr, err := Build(wantNode)
				if err != nil {
					return fail(tc, "building expected interrupt value: %v", err)
				}
				want := evalLiteral(wantExpr)
				if !out.Interrupt.Values[i].Equal(want) {
					return fail(tc, "interrupt value %d = %s, want %s", i, out.Interrupt.Values[i], want)
				}
			}
		}
		return pass(tc)

	default:
		return fail(tc, "fixture has no expectation")
	}
}

// evalLiteral evaluates a pure literal expression (the only shape
// Expectation.Value / Interrupt.Values fixtures may describe) against a
// throwaway context; it never touches the RNG, the host, or an
// intrinsic, since Build only ever produces Const/List/Map nodes for
// those YAML trees.
func evalLiteral(expr ast.Expression) ast.Value {
	ctx := eval.NewContext(defaultSeed, nil, intrinsic.NewRegistry(nil))
	out := eval.Eval(ctx, expr)
	if out.Failed() {
		panic(fmt.Sprintf("conformance fixture literal failed to evaluate: %v", outcomeDetail(out)))
	}
	return out.Value
}

func outcomeDetail(out evalerr.Outcome) string {
	if out.Err != nil {
		return out.Err.Error()
	}
	if out.Interrupt != nil {
		return out.Interrupt.String()
	}
	return "<none>"
}

func pass(tc TestCase) Result { return Result{Case: tc, Passed: true} }

func fail(tc TestCase, format string, args ...any) Result {
	return Result{Case: tc, Passed: false, Detail: fmt.Sprintf(format, args...)}
}
