package stdlib

import (
	"testing"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/eval"
	"github.com/zannabianca1997/dices-go/internal/host"
	"github.com/zannabianca1997/dices-go/intrinsic"
)

func TestStdShape(t *testing.T) {
	reg := intrinsic.NewRegistry(nil)
	std := Std(reg)

	for _, key := range []string{"intrisics", "filters", "prelude"} {
		if _, ok := std.Get(key); !ok {
			t.Fatalf("std library missing %q path", key)
		}
	}

	filters, _ := std.Get("filters")
	fm, ok := filters.(ast.MapValue)
	if !ok {
		t.Fatalf("filters is not a map: %T", filters)
	}
	for _, name := range []string{"kh", "kl", "rh", "rl"} {
		v, ok := fm.Get(name)
		if !ok {
			t.Fatalf("filters missing %q", name)
		}
		iv, ok := v.(ast.IntrinsicValue)
		if !ok || iv.Name != name {
			t.Errorf("filters[%q] = %v, want intrinsic %q", name, v, name)
		}
	}
}

func TestPreludeTopicsClosure(t *testing.T) {
	reg := intrinsic.NewRegistry(nil)
	prelude := Prelude()
	topicsClosure, ok := prelude.Get("topics")
	if !ok {
		t.Fatal("prelude missing topics")
	}
	closure, ok := topicsClosure.(ast.ClosureValue)
	if !ok {
		t.Fatalf("topics is not a closure: %T", topicsClosure)
	}

	hostState := host.New(map[string]string{"dice": "throws a uniform random integer"})
	ctx := eval.NewContext(42, hostState, reg)
	out := eval.Eval(ctx, ast.Call{Callee: ast.Const{Value: closure}})
	if out.Failed() {
		t.Fatalf("calling topics() failed: %+v", out)
	}
	if _, ok := out.Value.(ast.ListValue); !ok {
		t.Errorf("topics() = %v, want a List (help's zero-arg shape)", out.Value)
	}
}
