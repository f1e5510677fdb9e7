package ast

// IntrinsicValue is an opaque reference into the host's intrinsic table
// (spec §3.2, §4.6): the engine stores only the name, never the
// behaviour, so this package has no dependency on how intrinsics
// dispatch (see package intrinsic).
type IntrinsicValue struct {
	Name string
}

// NewIntrinsic wraps an intrinsic name as a Value.
func NewIntrinsic(name string) IntrinsicValue {
	return IntrinsicValue{Name: name}
}

func (IntrinsicValue) Kind() Kind { return KindIntrinsic }

func (i IntrinsicValue) String() string { return "<intrinsic:" + i.Name + ">" }

func (IntrinsicValue) Truthy() bool { return true }

func (i IntrinsicValue) Equal(other Value) bool {
	o, ok := other.(IntrinsicValue)
	return ok && i.Name == o.Name
}
