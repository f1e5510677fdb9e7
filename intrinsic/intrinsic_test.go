package intrinsic

import (
	"testing"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
)

type fakeHost struct {
	logged [][]ast.Value
	topics map[string]string
}

func (h *fakeHost) Log(values []ast.Value) { h.logged = append(h.logged, values) }
func (h *fakeHost) HelpTopic(name string) (string, bool) {
	p, ok := h.topics[name]
	return p, ok
}
func (h *fakeHost) HelpTopics() []string {
	out := make([]string, 0, len(h.topics))
	for k := range h.topics {
		out = append(out, k)
	}
	return out
}

func TestRegistryCoreLookup(t *testing.T) {
	r := NewRegistry(nil)
	if _, ok := r.FromName("quit"); !ok {
		t.Fatal("quit should be registered")
	}
	if _, ok := r.FromName("nope"); ok {
		t.Fatal("unknown intrinsic should not be found")
	}
	if len(r.All()) != 8 {
		t.Fatalf("expected 8 core intrinsics, got %d", len(r.All()))
	}
}

type injectedDouble struct{}

func (injectedDouble) Name() string { return "double" }
func (injectedDouble) Call(_ State, args []ast.Value) evalerr.Outcome {
	n, _ := ast.ToNumber(args[0])
	return evalerr.Ok(ast.NewNumber(n.Value() * 2))
}

func TestRegistryFindsInjected(t *testing.T) {
	r := NewRegistry([]Injected{injectedDouble{}})
	c, ok := r.FromName("double")
	if !ok {
		t.Fatal("injected intrinsic should be found")
	}
	out := c.Call(State{}, []ast.Value{ast.NewNumber(21)})
	if !out.Value.Equal(ast.NewNumber(42)) {
		t.Errorf("double(21) = %v, want 42", out.Value)
	}
}

func TestQuitRaisesInterrupt(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("quit")
	out := c.Call(State{}, []ast.Value{ast.NewString("bye")})
	if out.Interrupt == nil {
		t.Fatal("expected an interrupt")
	}
	if out.Interrupt.Kind != evalerr.InterruptQuitted {
		t.Errorf("expected InterruptQuitted, got %v", out.Interrupt.Kind)
	}
}

func TestQuitUnderConstEvalRaisesCannotEvalInConst(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("quit")
	out := c.Call(State{ConstEval: true}, []ast.Value{ast.NewString("bye")})
	if out.Interrupt == nil {
		t.Fatal("expected an interrupt")
	}
	if out.Interrupt.Kind != evalerr.InterruptCannotEvalInConst {
		t.Errorf("expected InterruptCannotEvalInConst, got %v", out.Interrupt.Kind)
	}
}

func TestPrintLogsAndReturnsNull(t *testing.T) {
	h := &fakeHost{}
	r := NewRegistry(nil)
	c, _ := r.FromName("print")
	out := c.Call(State{Host: h}, []ast.Value{ast.NewString("hi")})
	if !out.Value.Equal(ast.Null) {
		t.Errorf("print should return Null, got %v", out.Value)
	}
	if len(h.logged) != 1 {
		t.Fatalf("expected one log entry, got %d", len(h.logged))
	}
}

func TestPrintUnderConstEvalRaisesCannotEvalInConst(t *testing.T) {
	h := &fakeHost{}
	r := NewRegistry(nil)
	c, _ := r.FromName("print")
	out := c.Call(State{Host: h, ConstEval: true}, []ast.Value{ast.NewString("hi")})
	if out.Interrupt == nil || out.Interrupt.Kind != evalerr.InterruptCannotEvalInConst {
		t.Fatalf("expected InterruptCannotEvalInConst, got %+v", out)
	}
	if len(h.logged) != 0 {
		t.Errorf("print should not reach the host log under const eval, logged %v", h.logged)
	}
}

func TestHelpWithTopic(t *testing.T) {
	h := &fakeHost{topics: map[string]string{"kh": "keep highest"}}
	r := NewRegistry(nil)
	c, _ := r.FromName("help")
	out := c.Call(State{Host: h}, []ast.Value{ast.NewString("kh")})
	if !out.Value.Equal(ast.NewString("keep highest")) {
		t.Errorf("help(kh) = %v, want %q", out.Value, "keep highest")
	}
}

func TestHelpNoArgsListsTopics(t *testing.T) {
	h := &fakeHost{topics: map[string]string{"kh": "x", "kl": "y"}}
	r := NewRegistry(nil)
	c, _ := r.FromName("help")
	out := c.Call(State{Host: h}, nil)
	l, ok := out.Value.(ast.ListValue)
	if !ok || l.Len() != 2 {
		t.Fatalf("expected a 2-element list of topics, got %v", out.Value)
	}
}

func TestHelpUnderConstEvalRaisesCannotEvalInConst(t *testing.T) {
	h := &fakeHost{topics: map[string]string{"kh": "x"}}
	r := NewRegistry(nil)
	c, _ := r.FromName("help")
	out := c.Call(State{Host: h, ConstEval: true}, []ast.Value{ast.NewString("kh")})
	if out.Interrupt == nil || out.Interrupt.Kind != evalerr.InterruptCannotEvalInConst {
		t.Fatalf("expected InterruptCannotEvalInConst, got %+v", out)
	}
}

func TestSumFoldsWithAdd(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("sum")
	list := ast.NewList([]ast.Value{ast.NewNumber(1), ast.NewNumber(2), ast.NewNumber(3)})
	out := c.Call(State{}, []ast.Value{list})
	if !out.Value.Equal(ast.NewNumber(6)) {
		t.Errorf("sum([1,2,3]) = %v, want 6", out.Value)
	}
}

func TestSumEmptyListIsZero(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("sum")
	out := c.Call(State{}, []ast.Value{ast.NewList(nil)})
	if !out.Value.Equal(ast.NewNumber(0)) {
		t.Errorf("sum([]) = %v, want 0", out.Value)
	}
}

func TestKeepHighest(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("kh")
	list := ast.NewList([]ast.Value{ast.NewNumber(3), ast.NewNumber(1), ast.NewNumber(4), ast.NewNumber(1), ast.NewNumber(5)})
	out := c.Call(State{}, []ast.Value{list, ast.NewNumber(2)})
	l := out.Value.(ast.ListValue)
	want := ast.NewList([]ast.Value{ast.NewNumber(5), ast.NewNumber(4)})
	if !l.Equal(want) {
		t.Errorf("kh([3,1,4,1,5], 2) = %v, want %v", l, want)
	}
}

func TestRemoveLowest(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("rl")
	list := ast.NewList([]ast.Value{ast.NewNumber(3), ast.NewNumber(1), ast.NewNumber(4)})
	out := c.Call(State{}, []ast.Value{list, ast.NewNumber(1)})
	l := out.Value.(ast.ListValue)
	want := ast.NewList([]ast.Value{ast.NewNumber(3), ast.NewNumber(4)})
	if !l.Equal(want) {
		t.Errorf("rl([3,1,4], 1) = %v, want %v", l, want)
	}
}

func TestFilterCountClampsToListLength(t *testing.T) {
	r := NewRegistry(nil)
	c, _ := r.FromName("kh")
	list := ast.NewList([]ast.Value{ast.NewNumber(1), ast.NewNumber(2)})
	out := c.Call(State{}, []ast.Value{list, ast.NewNumber(100)})
	l := out.Value.(ast.ListValue)
	if l.Len() != 2 {
		t.Errorf("expected clamp to list length 2, got %d", l.Len())
	}
}
