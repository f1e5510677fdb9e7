package ast

// BoolValue is a boolean value.
type BoolValue struct {
	val bool
}

// NewBool wraps a bool as a Value.
func NewBool(v bool) BoolValue {
	return BoolValue{val: v}
}

// Value returns the underlying bool.
func (b BoolValue) Value() bool { return b.val }

func (BoolValue) Kind() Kind { return KindBool }

func (b BoolValue) String() string {
	if b.val {
		return "true"
	}
	return "false"
}

func (b BoolValue) Truthy() bool { return b.val }

func (b BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	return ok && b.val == o.val
}
