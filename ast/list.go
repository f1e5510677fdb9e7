package ast

import "strings"

// ListValue is an ordered, immutable sequence of values. Like the
// teacher's MooList, list contents are copy-on-write: every mutating
// operation returns a new ListValue sharing the unmodified backing array
// where possible, so a captured closure's view of a list it holds can
// never be mutated out from under it.
type ListValue struct {
	elems []Value
}

// NewList builds a ListValue from elems. The slice is not retained by
// reference mutation afterwards; callers must treat elems as consumed.
func NewList(elems []Value) ListValue {
	return ListValue{elems: elems}
}

// Len returns the number of elements.
func (l ListValue) Len() int { return len(l.elems) }

// Get returns the element at the given 0-based index.
func (l ListValue) Get(i int) (Value, bool) {
	if i < 0 || i >= len(l.elems) {
		return nil, false
	}
	return l.elems[i], true
}

// Set returns a new ListValue with the element at index i replaced by v.
func (l ListValue) Set(i int, v Value) (ListValue, bool) {
	if i < 0 || i >= len(l.elems) {
		return l, false
	}
	out := make([]Value, len(l.elems))
	copy(out, l.elems)
	out[i] = v
	return ListValue{elems: out}, true
}

// Append returns a new ListValue with v appended.
func (l ListValue) Append(v Value) ListValue {
	out := make([]Value, len(l.elems)+1)
	copy(out, l.elems)
	out[len(l.elems)] = v
	return ListValue{elems: out}
}

// Elements returns the backing slice for iteration. Callers must not
// mutate it.
func (l ListValue) Elements() []Value { return l.elems }

func (ListValue) Kind() Kind { return KindList }

func (l ListValue) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (l ListValue) Truthy() bool { return len(l.elems) > 0 }

func (l ListValue) Equal(other Value) bool {
	o, ok := other.(ListValue)
	if !ok || len(o.elems) != len(l.elems) {
		return false
	}
	for i, e := range l.elems {
		if !e.Equal(o.elems[i]) {
			return false
		}
	}
	return true
}
