package ast

import "testing"

func TestMatcherExact(t *testing.T) {
	m := ExactMatcher{Want: NewNumber(5)}
	if !m.IsMatch(NewNumber(5)) {
		t.Error("expected match")
	}
	if m.IsMatch(NewNumber(6)) {
		t.Error("expected no match")
	}
}

func TestMatcherRange(t *testing.T) {
	m := RangeMatcher{Start: NewNumber(1), End: NewNumber(5), Inclusive: false}
	if m.IsMatch(NewNumber(5)) {
		t.Error("exclusive range should not match end")
	}
	if !m.IsMatch(NewNumber(1)) {
		t.Error("range should match start")
	}
	mi := RangeMatcher{Start: NewNumber(1), End: NewNumber(5), Inclusive: true}
	if !mi.IsMatch(NewNumber(5)) {
		t.Error("inclusive range should match end")
	}
}

func TestMatcherList(t *testing.T) {
	m := ListMatcher{Elements: []Matcher{ExactMatcher{Want: NewNumber(1)}, AnyMatcher{}}}
	if !m.IsMatch(NewList([]Value{NewNumber(1), NewString("whatever")})) {
		t.Error("expected match")
	}
	if m.IsMatch(NewList([]Value{NewNumber(1)})) {
		t.Error("length mismatch should not match")
	}
}

func TestMatcherMapRequiresSameKeySet(t *testing.T) {
	m := MapMatcher{Entries: map[string]Matcher{"a": AnyMatcher{}}}
	if !m.IsMatch(NewMap(map[string]Value{"a": NewNumber(1)})) {
		t.Error("expected match with identical key set")
	}
	if m.IsMatch(NewMap(map[string]Value{"a": NewNumber(1), "b": NewNumber(2)})) {
		t.Error("extra key should fail the match")
	}
	if m.IsMatch(NewMap(map[string]Value{})) {
		t.Error("missing key should fail the match")
	}
}

func TestMatcherAndOrNot(t *testing.T) {
	gt3 := RangeMatcher{Start: NewNumber(4), End: NewNumber(1 << 30), Inclusive: false}
	lt10 := RangeMatcher{Start: NewNumber(-1 << 30), End: NewNumber(10), Inclusive: false}
	and := AndMatcher{A: gt3, B: lt10}
	if !and.IsMatch(NewNumber(5)) {
		t.Error("5 should satisfy 3<x<10")
	}
	if and.IsMatch(NewNumber(20)) {
		t.Error("20 should not satisfy 3<x<10")
	}
	not := NotMatcher{M: gt3}
	if !not.IsMatch(NewNumber(1)) {
		t.Error("Not(gt3) should match 1")
	}
	or := OrMatcher{A: ExactMatcher{Want: NewNumber(1)}, B: ExactMatcher{Want: NewNumber(2)}}
	if !or.IsMatch(NewNumber(2)) {
		t.Error("Or should match 2")
	}
}

func TestMatcherAnyNone(t *testing.T) {
	if !(AnyMatcher{}).IsMatch(Null) {
		t.Error("Any should match anything")
	}
	if (NoneMatcher{}).IsMatch(Null) {
		t.Error("None should match nothing")
	}
}
