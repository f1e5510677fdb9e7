package ast

import (
	"golang.org/x/exp/constraints"
)

// compareOrdered is the shared building block for comparing the scalar
// payloads (Number's int64, String's string) that make up the total
// order over Value (spec §3.2). Shared with the Matcher Range bound
// check (spec §4.7) so both paths agree on what "less than" means for a
// given payload type.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare implements the total order over Value required by spec §3.2:
// lexicographic by (Kind, payload), with Kind order Null < Bool < Number
// < String < List < Map < Closure < Intrinsic.
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		return compareOrdered(int(a.Kind()), int(b.Kind()))
	}
	switch av := a.(type) {
	case NullValue:
		return 0
	case BoolValue:
		bv := b.(BoolValue)
		return compareOrdered(boolRank(av.val), boolRank(bv.val))
	case NumberValue:
		return compareOrdered(av.val, b.(NumberValue).val)
	case StringValue:
		return compareOrdered(av.val, b.(StringValue).val)
	case ListValue:
		bv := b.(ListValue)
		n := len(av.elems)
		if len(bv.elems) < n {
			n = len(bv.elems)
		}
		for i := 0; i < n; i++ {
			if c := Compare(av.elems[i], bv.elems[i]); c != 0 {
				return c
			}
		}
		return compareOrdered(len(av.elems), len(bv.elems))
	case MapValue:
		bv := b.(MapValue)
		n := len(av.entries)
		if len(bv.entries) < n {
			n = len(bv.entries)
		}
		for i := 0; i < n; i++ {
			if c := compareOrdered(av.entries[i].key, bv.entries[i].key); c != 0 {
				return c
			}
			if c := Compare(av.entries[i].val, bv.entries[i].val); c != 0 {
				return c
			}
		}
		return compareOrdered(len(av.entries), len(bv.entries))
	case ClosureValue:
		// Closures have no natural order; fall back to a deterministic
		// (if not semantically meaningful) comparison of their literal
		// form so Matcher::Range over a Closure value is at least total
		// and reproducible.
		return compareOrdered(av.String(), b.(ClosureValue).String())
	case IntrinsicValue:
		return compareOrdered(av.Name, b.(IntrinsicValue).Name)
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Less reports whether a sorts before b in the total order.
func Less(a, b Value) bool { return Compare(a, b) < 0 }
