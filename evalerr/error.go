// Package evalerr defines the error and interrupt taxonomy that flows out
// of package eval, per spec §7. It sits between ast and the packages that
// raise these errors (intrinsic, eval) so neither of those needs to
// import the other just to report a failure.
package evalerr

import (
	"fmt"

	"github.com/zannabianca1997/dices-go/ast"
)

// Kind discriminates the taxonomy of spec §7, excluding the Parse kinds
// (UnexpectedToken, UnexpectedEof, InvalidIdentifier, InvalidEscape),
// which are raised by the external parser contract (spec §4.1) and never
// constructed by this engine, and excluding Quitted/CannotEvalInConst,
// which are interrupts (see Interrupt below), not ordinary errors.
type Kind int

const (
	// Resolution
	KindUnknownVariable Kind = iota
	KindNotAssignable

	// Type
	KindTypeError
	KindToNumberError
	KindToListError // never raised: ast.ToList cannot fail per spec §3.3; kept for taxonomy completeness.

	// Arithmetic
	KindDivisionByZero
	KindNegativeRepeat
	KindFacesMustBePositive

	// Call
	KindNotCallable
	KindArityMismatch

	// Intrinsic
	KindIntrinsicError

	// Control
	KindRecursionLimit

	// Serialization
	KindBincodeDecode
	KindInvalidEmptyScope
	KindVersionMismatch
)

func (k Kind) String() string {
	switch k {
	case KindUnknownVariable:
		return "UnknownVariable"
	case KindNotAssignable:
		return "NotAssignable"
	case KindTypeError:
		return "TypeError"
	case KindToNumberError:
		return "ToNumberError"
	case KindToListError:
		return "ToListError"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindNegativeRepeat:
		return "NegativeRepeat"
	case KindFacesMustBePositive:
		return "FacesMustBePositive"
	case KindNotCallable:
		return "NotCallable"
	case KindArityMismatch:
		return "ArityMismatch"
	case KindIntrinsicError:
		return "IntrinsicError"
	case KindRecursionLimit:
		return "RecursionLimit"
	case KindBincodeDecode:
		return "BincodeDecode"
	case KindInvalidEmptyScope:
		return "InvalidEmptyScope"
	case KindVersionMismatch:
		return "VersionMismatch"
	default:
		return "Unknown"
	}
}

// Error is the single concrete error type the engine raises. It carries
// a kind, a short human message, and an optional source chain (spec §7:
// "each error carries (a) a kind, (b) a short human message, and (c) an
// optional source chain").
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// TypeError reports a value of the wrong kind where Expected was needed.
func TypeError(expected, found ast.Kind) *Error {
	return New(KindTypeError, fmt.Sprintf("expected %s, found %s", expected, found))
}

// ArityMismatch reports a call with the wrong number of arguments.
func ArityMismatch(expected, found int) *Error {
	return New(KindArityMismatch, fmt.Sprintf("expected %d argument(s), found %d", expected, found))
}

// NotCallable reports an attempt to call a non-callable value.
func NotCallable(kind ast.Kind) *Error {
	return New(KindNotCallable, fmt.Sprintf("%s is not callable", kind))
}

// InterruptKind discriminates the two structured interrupts of spec §5.
type InterruptKind int

const (
	InterruptQuitted InterruptKind = iota
	InterruptCannotEvalInConst
)

// Interrupt is raised by the `quit` intrinsic or by a call requiring I/O
// under a "const" evaluation flag (spec §5). It deliberately does not
// implement the error interface: it must propagate to the top of the
// current evaluation without being caught by any language-level
// construct, and the engine's own Outcome type (below) keeps it
// in a field separate from ordinary errors so Go code cannot accidentally
// treat it as one via a bare `if err != nil`.
type Interrupt struct {
	Kind    InterruptKind
	Values  []ast.Value
	Message string
}

func (i *Interrupt) String() string {
	if i.Kind == InterruptCannotEvalInConst {
		return "CannotEvalInConst: " + i.Message
	}
	return "Quitted"
}

// Outcome is the three-way result of evaluating an expression or calling
// an intrinsic: exactly one of Err and Interrupt is set on failure, and
// both are nil on success. Keeping Interrupt in its own field (rather
// than folding it into the Go error return) is what lets it skip past
// ordinary `if err != nil` handling on its way out of nested calls.
type Outcome struct {
	Value     ast.Value
	Err       *Error
	Interrupt *Interrupt
}

// Ok builds a successful Outcome.
func Ok(v ast.Value) Outcome { return Outcome{Value: v} }

// Fail builds an Outcome carrying an ordinary error.
func Fail(err *Error) Outcome { return Outcome{Err: err} }

// Raise builds an Outcome carrying a structured interrupt.
func Raise(i *Interrupt) Outcome { return Outcome{Interrupt: i} }

// Failed reports whether the outcome is anything other than a plain
// success: either an error or an interrupt.
func (o Outcome) Failed() bool { return o.Err != nil || o.Interrupt != nil }
