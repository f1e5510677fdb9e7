package wire

import (
	"testing"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/ident"
)

func roundTripValue(t *testing.T, v ast.Value) ast.Value {
	t.Helper()
	blob, err := EncodeValue(v)
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}
	got, err := DecodeValue(blob)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	return got
}

func TestValueRoundTrip(t *testing.T) {
	m := ast.EmptyMap.Set("a", ast.NewNumber(1)).Set("b", ast.NewString("two"))
	cases := []ast.Value{
		ast.Null,
		ast.NewBool(true),
		ast.NewBool(false),
		ast.NewNumber(-42),
		ast.NewString("héllo\n\"world\""),
		ast.NewList([]ast.Value{ast.NewNumber(1), ast.NewNumber(2), ast.NewNumber(3)}),
		m,
		ast.NewIntrinsic("quit"),
		ast.NewClosure(
			[]ident.Ident{ident.MustNew("x")},
			ast.EmptyMap.Set("y", ast.NewNumber(9)),
			ast.BinaryOp{Op: ast.OpAdd, Lhs: ast.Ref{Name: ident.MustNew("x")}, Rhs: ast.Ref{Name: ident.MustNew("y")}},
		),
	}
	for _, v := range cases {
		got := roundTripValue(t, v)
		if !got.Equal(v) {
			t.Errorf("round trip mismatch: got %v, want %v", got, v)
		}
	}
}

func TestExpressionRoundTrip(t *testing.T) {
	expr := ast.Scope{Body: []ast.Expression{
		ast.Set{Receiver: ast.LetReceiver{Name: ident.MustNew("x")}, Value: ast.Const{Value: ast.NewNumber(5)}},
		ast.BinaryOp{
			Op:  ast.OpMul,
			Lhs: ast.Ref{Name: ident.MustNew("x")},
			Rhs: ast.Ref{Name: ident.MustNew("x")},
		},
	}}

	blob, err := EncodeExpression(expr)
	if err != nil {
		t.Fatalf("EncodeExpression: %v", err)
	}
	got, err := DecodeExpression(blob)
	if err != nil {
		t.Fatalf("DecodeExpression: %v", err)
	}
	if !got.Equal(expr) {
		t.Errorf("round trip mismatch: got %#v, want %#v", got, expr)
	}
}

func TestEmptyScopeRejectedOnEncodeAndDecode(t *testing.T) {
	if _, err := EncodeExpression(ast.Scope{}); err == nil {
		t.Fatal("expected error encoding an empty Scope")
	}

	// Hand-build a blob whose scope length varint is 0, bypassing the
	// encode-side guard, to exercise the decode-side rejection
	// independently (spec §6.4: "decoding rejects zero length with
	// InvalidEmptyScope").
	var w Writer
	w.writeUvarint(tagScope)
	w.writeUvarint(0)
	blob := wrapBlob(&w)

	if _, err := DecodeExpression(blob); err == nil {
		t.Fatal("expected error decoding an empty Scope")
	}
}

func TestChecksumDetectsCorruption(t *testing.T) {
	blob, err := EncodeValue(ast.NewNumber(7))
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}
	corrupt := append([]byte(nil), blob...)
	corrupt[len(corrupt)-1] ^= 0xFF
	if _, err := DecodeValue(corrupt); err == nil {
		t.Fatal("expected checksum mismatch error on corrupted blob")
	}
}
