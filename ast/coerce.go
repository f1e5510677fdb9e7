package ast

import (
	"fmt"
	"strconv"
)

// ToNumberErrorKind discriminates why a value could not be coerced to a
// Number (spec §3.3).
type ToNumberErrorKind int

const (
	ToNumberInvalidNull ToNumberErrorKind = iota
	ToNumberInvalidClosure
	ToNumberInvalidIntrinsic
	ToNumberInvalidString
	ToNumberListNotSingular
	ToNumberInvalidMap
)

// ToNumberError reports a value that cannot be coerced to a Number.
type ToNumberError struct {
	Kind     ToNumberErrorKind
	ListLen  int // set when Kind == ToNumberListNotSingular
	Original error
}

func (e *ToNumberError) Error() string {
	switch e.Kind {
	case ToNumberInvalidNull:
		return "cannot convert null to a number"
	case ToNumberInvalidClosure:
		return "cannot convert a closure to a number"
	case ToNumberInvalidIntrinsic:
		return "cannot convert an intrinsic to a number"
	case ToNumberInvalidString:
		return fmt.Sprintf("cannot parse string as a number: %v", e.Original)
	case ToNumberListNotSingular:
		return fmt.Sprintf("cannot convert a list of %d elements to a number (need exactly 1)", e.ListLen)
	case ToNumberInvalidMap:
		return "cannot convert a map to a number"
	default:
		return "cannot convert to a number"
	}
}

func (e *ToNumberError) Unwrap() error { return e.Original }

// ToNumber implements spec §3.3's to_number coercion: Bool -> 0/1, Number
// -> itself, String -> parsed then coerced, a singleton List recurses
// into its one element; everything else fails.
func ToNumber(v Value) (NumberValue, error) {
	switch val := v.(type) {
	case NullValue:
		return NumberValue{}, &ToNumberError{Kind: ToNumberInvalidNull}
	case BoolValue:
		if val.val {
			return NewNumber(1), nil
		}
		return NewNumber(0), nil
	case NumberValue:
		return val, nil
	case StringValue:
		n, err := strconv.ParseInt(val.val, 10, 64)
		if err != nil {
			return NumberValue{}, &ToNumberError{Kind: ToNumberInvalidString, Original: err}
		}
		return NewNumber(n), nil
	case ListValue:
		if len(val.elems) != 1 {
			return NumberValue{}, &ToNumberError{Kind: ToNumberListNotSingular, ListLen: len(val.elems)}
		}
		return ToNumber(val.elems[0])
	case MapValue:
		return NumberValue{}, &ToNumberError{Kind: ToNumberInvalidMap}
	case ClosureValue:
		return NumberValue{}, &ToNumberError{Kind: ToNumberInvalidClosure}
	case IntrinsicValue:
		return NumberValue{}, &ToNumberError{Kind: ToNumberInvalidIntrinsic}
	default:
		return NumberValue{}, &ToNumberError{Kind: ToNumberInvalidNull}
	}
}

// ToList implements spec §3.3's to_list coercion: every value wraps into
// a singleton list, a List is returned unchanged, and a Map is flattened
// into its sorted values.
func ToList(v Value) ListValue {
	switch val := v.(type) {
	case ListValue:
		return val
	case MapValue:
		return NewList(val.SortedValues())
	default:
		return NewList([]Value{v})
	}
}
