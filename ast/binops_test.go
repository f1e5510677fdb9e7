package ast

import "testing"

func mustValue(t *testing.T, v Value, err error) Value {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestAddNumbers(t *testing.T) {
	v := mustValue(t, Add(NewNumber(2), NewNumber(3)))
	if !v.Equal(NewNumber(5)) {
		t.Errorf("2+3 = %v, want 5", v)
	}
}

func TestAddStringCoercion(t *testing.T) {
	v := mustValue(t, Add(NewString("3"), NewNumber(4)))
	if !v.Equal(NewNumber(7)) {
		t.Errorf(`"3"+4 = %v, want 7`, v)
	}
}

func TestAddElementwiseLists(t *testing.T) {
	a := NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)})
	b := NewList([]Value{NewNumber(10), NewNumber(20), NewNumber(30)})
	v := mustValue(t, Add(a, b))
	want := NewList([]Value{NewNumber(11), NewNumber(22), NewNumber(33)})
	if !v.Equal(want) {
		t.Errorf("elementwise add = %v, want %v", v, want)
	}
}

func TestAddListLengthMismatch(t *testing.T) {
	a := NewList([]Value{NewNumber(1)})
	b := NewList([]Value{NewNumber(1), NewNumber(2)})
	if _, err := Add(a, b); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestAddMapsUnion(t *testing.T) {
	a := NewMap(map[string]Value{"x": NewNumber(1), "y": NewNumber(2)})
	b := NewMap(map[string]Value{"y": NewNumber(10), "z": NewNumber(3)})
	v := mustValue(t, Add(a, b))
	want := NewMap(map[string]Value{"x": NewNumber(1), "y": NewNumber(12), "z": NewNumber(3)})
	if !v.Equal(want) {
		t.Errorf("map union add = %v, want %v", v, want)
	}
}

func TestSubIsAddNegate(t *testing.T) {
	v := mustValue(t, Sub(NewNumber(5), NewNumber(3)))
	if !v.Equal(NewNumber(2)) {
		t.Errorf("5-3 = %v, want 2", v)
	}
}

func TestMulScalarDistributesOverList(t *testing.T) {
	l := NewList([]Value{NewNumber(1), NewNumber(2), NewNumber(3)})
	v := mustValue(t, Mul(NewNumber(2), l))
	want := NewList([]Value{NewNumber(2), NewNumber(4), NewNumber(6)})
	if !v.Equal(want) {
		t.Errorf("2*[1,2,3] = %v, want %v", v, want)
	}
}

func TestMulSingletonListDistributes(t *testing.T) {
	l := NewList([]Value{NewNumber(1), NewNumber(2)})
	single := NewList([]Value{NewNumber(3)})
	v := mustValue(t, Mul(single, l))
	want := NewList([]Value{NewNumber(3), NewNumber(6)})
	if !v.Equal(want) {
		t.Errorf("[3]*[1,2] = %v, want %v", v, want)
	}
}

func TestMulClosureForbidden(t *testing.T) {
	c := NewClosure(nil, EmptyMap, Const{Value: Null})
	if _, err := Mul(NewNumber(2), c); err == nil {
		t.Fatal("expected error multiplying a closure")
	}
}

func TestDivTruncatesTowardZero(t *testing.T) {
	v := mustValue(t, Div(NewNumber(-7), NewNumber(2)))
	if !v.Equal(NewNumber(-3)) {
		t.Errorf("-7/2 = %v, want -3", v)
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(NewNumber(1), NewNumber(0)); err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestDivMapsKeyUnion(t *testing.T) {
	a := NewMap(map[string]Value{"x": NewNumber(10), "y": NewNumber(20)})
	b := NewMap(map[string]Value{"y": NewNumber(4), "z": NewNumber(3)})
	v := mustValue(t, Div(a, b))
	want := NewMap(map[string]Value{"x": NewNumber(10), "y": NewNumber(5), "z": NewNumber(3)})
	if !v.Equal(want) {
		t.Errorf("map union div = %v, want %v", v, want)
	}
}

func TestModByZero(t *testing.T) {
	if _, err := Mod(NewNumber(1), NewNumber(0)); err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestJoinLists(t *testing.T) {
	a := NewList([]Value{NewNumber(1)})
	b := NewList([]Value{NewNumber(2)})
	v := mustValue(t, Join(a, b))
	want := NewList([]Value{NewNumber(1), NewNumber(2)})
	if !v.Equal(want) {
		t.Errorf("[1]~[2] = %v, want %v", v, want)
	}
}

func TestJoinMapsRhsWins(t *testing.T) {
	a := NewMap(map[string]Value{"x": NewNumber(1)})
	b := NewMap(map[string]Value{"x": NewNumber(2)})
	v := mustValue(t, Join(a, b))
	want := NewMap(map[string]Value{"x": NewNumber(2)})
	if !v.Equal(want) {
		t.Errorf("join maps rhs should win, got %v want %v", v, want)
	}
}

func TestJoinStrings(t *testing.T) {
	v := mustValue(t, Join(NewString("ab"), NewString("cd")))
	if !v.Equal(NewString("abcd")) {
		t.Errorf(`"ab"~"cd" = %v, want "abcd"`, v)
	}
}

func TestJoinTypeMismatch(t *testing.T) {
	if _, err := Join(NewString("a"), NewNumber(1)); err == nil {
		t.Fatal("expected type mismatch error")
	}
}
