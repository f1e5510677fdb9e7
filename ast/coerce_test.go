package ast

import "testing"

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		v       Value
		want    int64
		wantErr bool
	}{
		{"bool true", NewBool(true), 1, false},
		{"bool false", NewBool(false), 0, false},
		{"number", NewNumber(42), 42, false},
		{"string digits", NewString("7"), 7, false},
		{"string garbage", NewString("nope"), 0, true},
		{"singleton list", NewList([]Value{NewNumber(9)}), 9, false},
		{"empty list", NewList(nil), 0, true},
		{"multi list", NewList([]Value{NewNumber(1), NewNumber(2)}), 0, true},
		{"null", Null, 0, true},
		{"map", EmptyMap, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ToNumber(tt.v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Value() != tt.want {
				t.Errorf("ToNumber() = %d, want %d", n.Value(), tt.want)
			}
		})
	}
}

func TestToNumberRecursesSingletonList(t *testing.T) {
	v := NewList([]Value{NewList([]Value{NewNumber(5)})})
	n, err := ToNumber(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Value() != 5 {
		t.Errorf("ToNumber() = %d, want 5", n.Value())
	}
}

// TestToListInvariant checks spec §8 universal invariant 2: to_list(v)
// always has length >= 1, and is idempotent for non-list v.
func TestToListInvariant(t *testing.T) {
	values := []Value{
		Null, NewBool(true), NewNumber(3), NewString("s"),
		NewMap(map[string]Value{"a": NewNumber(1)}),
	}
	for _, v := range values {
		l := ToList(v)
		if l.Len() < 1 {
			t.Fatalf("ToList(%v) has length %d, want >= 1", v, l.Len())
		}
		if _, isList := v.(ListValue); !isList {
			l2 := ToList(l)
			if !l.Equal(l2) {
				t.Fatalf("ToList(ToList(v)) != ToList(v) for %v", v)
			}
		}
	}
}

func TestToListFlattensMapInSortedOrder(t *testing.T) {
	m := NewMap(map[string]Value{"z": NewNumber(3), "a": NewNumber(1), "m": NewNumber(2)})
	l := ToList(m)
	want := []int64{1, 2, 3}
	if l.Len() != 3 {
		t.Fatalf("ToList(map) length = %d, want 3", l.Len())
	}
	for i, w := range want {
		v, _ := l.Get(i)
		if v.(NumberValue).Value() != w {
			t.Errorf("element %d = %v, want %d", i, v, w)
		}
	}
}
