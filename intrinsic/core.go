package intrinsic

import (
	"sort"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
)

func coreIntrinsics() []Injected {
	return []Injected{
		coreFunc{"quit", quitCall},
		coreFunc{"print", printCall},
		coreFunc{"help", helpCall},
		coreFunc{"kh", filterCall(true, true)},
		coreFunc{"kl", filterCall(true, false)},
		coreFunc{"rh", filterCall(false, true)},
		coreFunc{"rl", filterCall(false, false)},
		coreFunc{"sum", sumCall},
	}
}

// coreFunc adapts a plain dispatch function to Injected, mirroring how
// the teacher's Registry stores bare BuiltinFunc values rather than
// method-carrying objects for stateless builtins.
type coreFunc struct {
	name string
	fn   func(state State, args []ast.Value) evalerr.Outcome
}

func (c coreFunc) Name() string                                      { return c.name }
func (c coreFunc) Call(state State, args []ast.Value) evalerr.Outcome { return c.fn(state, args) }

// quitCall raises the Quitted interrupt (spec §5) carrying its
// arguments untouched, unless the calling context is const-evaluating,
// in which case it raises CannotEvalInConst instead — quitting is
// itself a host-visible control-flow effect (original_source's
// `Intrisic::Quit` raises the same way under `context.is_const()`).
func quitCall(state State, args []ast.Value) evalerr.Outcome {
	if state.ConstEval {
		return evalerr.Raise(&evalerr.Interrupt{Kind: evalerr.InterruptCannotEvalInConst, Message: "cannot quit in a const context"})
	}
	return evalerr.Raise(&evalerr.Interrupt{Kind: evalerr.InterruptQuitted, Values: args})
}

// printCall appends its arguments to the host log and returns Null
// (spec §4.6), unless the calling context is const-evaluating, in which
// case logging — a host-visible effect — is refused with
// CannotEvalInConst.
func printCall(state State, args []ast.Value) evalerr.Outcome {
	if state.ConstEval {
		return evalerr.Raise(&evalerr.Interrupt{Kind: evalerr.InterruptCannotEvalInConst, Message: "cannot print in a const context"})
	}
	h, ok := state.Host.(Host)
	if !ok {
		return evalerr.Fail(evalerr.New(evalerr.KindIntrinsicError, "print requires a host log sink"))
	}
	h.Log(args)
	return evalerr.Ok(ast.Null)
}

// helpCall asks the host for a manual page by name, or — called with no
// argument — returns the list of topics the host can serve (spec.md's
// distillation is silent on the zero-arg return shape; original_source's
// help surface is a discoverability aid, so listing topics rather than
// erroring keeps that spirit). Like print, it reaches the host and so
// is refused under a const context.
func helpCall(state State, args []ast.Value) evalerr.Outcome {
	if state.ConstEval {
		return evalerr.Raise(&evalerr.Interrupt{Kind: evalerr.InterruptCannotEvalInConst, Message: "cannot consult the host manual in a const context"})
	}
	h, ok := state.Host.(Host)
	if !ok {
		return evalerr.Fail(evalerr.New(evalerr.KindIntrinsicError, "help requires a host manual"))
	}
	if len(args) == 0 {
		topics := h.HelpTopics()
		out := make([]ast.Value, len(topics))
		for i, t := range topics {
			out[i] = ast.NewString(t)
		}
		return evalerr.Ok(ast.NewList(out))
	}
	if len(args) != 1 {
		return evalerr.Fail(evalerr.ArityMismatch(1, len(args)))
	}
	nameVal, ok := args[0].(ast.StringValue)
	if !ok {
		return evalerr.Fail(evalerr.TypeError(ast.KindString, args[0].Kind()))
	}
	page, found := h.HelpTopic(nameVal.Value())
	if !found {
		return evalerr.Ok(ast.Null)
	}
	return evalerr.Ok(ast.NewString(page))
}

// sumCall folds a list with `+` (spec §4.6), reducing from its first
// element so non-numeric shapes (lists of lists, maps) fold the way the
// `+` operator itself composes them; an empty list sums to 0, `+`'s
// additive identity.
func sumCall(_ State, args []ast.Value) evalerr.Outcome {
	if len(args) != 1 {
		return evalerr.Fail(evalerr.ArityMismatch(1, len(args)))
	}
	elems := ast.ToList(args[0]).Elements()
	if len(elems) == 0 {
		return evalerr.Ok(ast.NewNumber(0))
	}
	acc := elems[0]
	for _, e := range elems[1:] {
		v, err := ast.Add(acc, e)
		if err != nil {
			return evalerr.Fail(evalerr.Wrap(evalerr.KindTypeError, "sum", err))
		}
		acc = v
	}
	return evalerr.Ok(acc)
}

// filterCall builds kh/kl/rh/rl (spec §4.6): keep selects whether n
// counts elements to retain (kh/kl) or to drop (rh/rl); highest selects
// which end of the sorted order n counts from, and also the direction
// the result is listed in — kh/rh read "high first", kl/rl "low first"
// (spec §8 scenario 4: kh([3,1,4,1,5,9,2,6], 3) -> [9,6,5]).
func filterCall(keep, highest bool) func(State, []ast.Value) evalerr.Outcome {
	return func(_ State, args []ast.Value) evalerr.Outcome {
		if len(args) != 2 {
			return evalerr.Fail(evalerr.ArityMismatch(2, len(args)))
		}
		elems := ast.ToList(args[0]).Elements()
		nVal, err := ast.ToNumber(args[1])
		if err != nil {
			return evalerr.Fail(evalerr.Wrap(evalerr.KindToNumberError, "filter count", err))
		}
		n := clamp(int(nVal.Value()), 0, len(elems))

		order := make([]int, len(elems))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return ast.Less(elems[order[i]], elems[order[j]])
		})

		var keepLen int
		var fromTop bool
		if keep {
			keepLen = n
			fromTop = highest
		} else {
			keepLen = len(elems) - n
			fromTop = !highest
		}

		var selected []int
		if fromTop {
			selected = order[len(order)-keepLen:]
		} else {
			selected = order[:keepLen]
		}
		if highest {
			reverseInts(selected)
		}

		out := make([]ast.Value, len(selected))
		for i, idx := range selected {
			out[i] = elems[idx]
		}
		return evalerr.Ok(ast.NewList(out))
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
