package evalerr

import (
	"errors"
	"testing"

	"github.com/zannabianca1997/dices-go/ast"
)

func TestKindString(t *testing.T) {
	if KindTypeError.String() != "TypeError" {
		t.Errorf("got %q", KindTypeError.String())
	}
	if Kind(999).String() != "Unknown" {
		t.Errorf("unknown kind should stringify to Unknown")
	}
}

func TestErrorFormatting(t *testing.T) {
	e := New(KindUnknownVariable, "x")
	if e.Error() != "UnknownVariable: x" {
		t.Errorf("got %q", e.Error())
	}
}

func TestErrorWrapAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := Wrap(KindBincodeDecode, "bad frame", cause)
	if !errors.Is(e, cause) {
		t.Error("errors.Is should see through Unwrap to the cause")
	}
	if e.Error() != "BincodeDecode: bad frame: boom" {
		t.Errorf("got %q", e.Error())
	}
}

func TestTypeErrorHelper(t *testing.T) {
	e := TypeError(ast.KindNumber, ast.KindString)
	if e.Kind != KindTypeError {
		t.Errorf("want KindTypeError, got %v", e.Kind)
	}
}

func TestArityMismatchHelper(t *testing.T) {
	e := ArityMismatch(2, 1)
	if e.Kind != KindArityMismatch {
		t.Errorf("want KindArityMismatch, got %v", e.Kind)
	}
}

func TestNotCallableHelper(t *testing.T) {
	e := NotCallable(ast.KindNumber)
	if e.Kind != KindNotCallable {
		t.Errorf("want KindNotCallable, got %v", e.Kind)
	}
}

// TestInterruptIsNotAnError confirms Interrupt deliberately does not
// satisfy Go's error interface (spec §5: Quitted/CannotEvalInConst must
// propagate uncatchably rather than through ordinary error handling).
func TestInterruptIsNotAnError(t *testing.T) {
	var i any = &Interrupt{Kind: InterruptQuitted}
	if _, ok := i.(error); ok {
		t.Fatal("Interrupt must not implement error")
	}
}

func TestOutcomeHelpers(t *testing.T) {
	if (Ok(ast.NewNumber(1))).Failed() {
		t.Error("Ok should not be Failed")
	}
	if !(Fail(New(KindTypeError, "x"))).Failed() {
		t.Error("Fail should be Failed")
	}
	if !(Raise(&Interrupt{Kind: InterruptQuitted})).Failed() {
		t.Error("Raise should be Failed")
	}
}

func TestInterruptString(t *testing.T) {
	q := &Interrupt{Kind: InterruptQuitted}
	if q.String() != "Quitted" {
		t.Errorf("got %q", q.String())
	}
	c := &Interrupt{Kind: InterruptCannotEvalInConst, Message: "print"}
	if c.String() != "CannotEvalInConst: print" {
		t.Errorf("got %q", c.String())
	}
}
