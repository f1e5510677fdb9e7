package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/ident"
)

// Reader decodes a wire-format payload from an in-memory byte slice,
// mirroring the teacher's Reader (db/reader.go) but framed as varint
// binary with an explicit cursor instead of a buffered newline scanner.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) decodeErr(what string, cause error) *evalerr.Error {
	return evalerr.Wrap(evalerr.KindBincodeDecode, "decoding "+what, cause)
}

func (r *Reader) readUvarint(what string) (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, r.decodeErr(what, io.ErrUnexpectedEOF)
	}
	r.pos += n
	return v, nil
}

func (r *Reader) readVarint(what string) (int64, error) {
	v, n := binary.Varint(r.data[r.pos:])
	if n <= 0 {
		return 0, r.decodeErr(what, io.ErrUnexpectedEOF)
	}
	r.pos += n
	return v, nil
}

func (r *Reader) readByte(what string) (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.decodeErr(what, io.ErrUnexpectedEOF)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) readString(what string) (string, error) {
	n, err := r.readUvarint(what + " length")
	if err != nil {
		return "", err
	}
	if uint64(r.pos)+n > uint64(len(r.data)) {
		return "", r.decodeErr(what, io.ErrUnexpectedEOF)
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

func (r *Reader) readIdent(what string) (ident.Ident, error) {
	s, err := r.readString(what)
	if err != nil {
		return ident.Ident{}, err
	}
	id, err := ident.New(s)
	if err != nil {
		return ident.Ident{}, r.decodeErr(what, err)
	}
	return id, nil
}

// ReadValue decodes a Value (spec §6.4, §3.2).
func (r *Reader) ReadValue() (ast.Value, error) {
	tag, err := r.readUvarint("value tag")
	if err != nil {
		return nil, err
	}
	switch ast.Kind(tag) {
	case ast.KindNull:
		return ast.Null, nil
	case ast.KindBool:
		b, err := r.readByte("bool payload")
		if err != nil {
			return nil, err
		}
		return ast.NewBool(b != 0), nil
	case ast.KindNumber:
		n, err := r.readVarint("number payload")
		if err != nil {
			return nil, err
		}
		return ast.NewNumber(n), nil
	case ast.KindString:
		s, err := r.readString("string payload")
		if err != nil {
			return nil, err
		}
		return ast.NewString(s), nil
	case ast.KindList:
		n, err := r.readUvarint("list length")
		if err != nil {
			return nil, err
		}
		elems := make([]ast.Value, n)
		for i := range elems {
			elems[i], err = r.ReadValue()
			if err != nil {
				return nil, err
			}
		}
		return ast.NewList(elems), nil
	case ast.KindMap:
		n, err := r.readUvarint("map length")
		if err != nil {
			return nil, err
		}
		out := ast.EmptyMap
		for i := uint64(0); i < n; i++ {
			key, err := r.readString("map key")
			if err != nil {
				return nil, err
			}
			val, err := r.ReadValue()
			if err != nil {
				return nil, err
			}
			out = out.Set(key, val)
		}
		return out, nil
	case ast.KindClosure:
		nParams, err := r.readUvarint("closure param count")
		if err != nil {
			return nil, err
		}
		params := make([]ident.Ident, nParams)
		for i := range params {
			params[i], err = r.readIdent("closure param")
			if err != nil {
				return nil, err
			}
		}
		nCaptures, err := r.readUvarint("closure capture count")
		if err != nil {
			return nil, err
		}
		captures := ast.EmptyMap
		for i := uint64(0); i < nCaptures; i++ {
			key, err := r.readString("capture key")
			if err != nil {
				return nil, err
			}
			val, err := r.ReadValue()
			if err != nil {
				return nil, err
			}
			captures = captures.Set(key, val)
		}
		body, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewClosure(params, captures, body), nil
	case ast.KindIntrinsic:
		name, err := r.readString("intrinsic name")
		if err != nil {
			return nil, err
		}
		return ast.NewIntrinsic(name), nil
	default:
		return nil, r.decodeErr("value", fmt.Errorf("unknown value tag %d", tag))
	}
}

// ReadExpression decodes an ast.Expression node (spec §3.4, §6.4).
func (r *Reader) ReadExpression() (ast.Expression, error) {
	tag, err := r.readUvarint("expression tag")
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagConst:
		v, err := r.ReadValue()
		if err != nil {
			return nil, err
		}
		return ast.Const{Value: v}, nil
	case tagList:
		n, err := r.readUvarint("list expression length")
		if err != nil {
			return nil, err
		}
		elems := make([]ast.Expression, n)
		for i := range elems {
			elems[i], err = r.ReadExpression()
			if err != nil {
				return nil, err
			}
		}
		return ast.List{Elements: elems}, nil
	case tagMap:
		n, err := r.readUvarint("map expression length")
		if err != nil {
			return nil, err
		}
		entries := make(map[string]ast.Expression, n)
		for i := uint64(0); i < n; i++ {
			key, err := r.readString("map expression key")
			if err != nil {
				return nil, err
			}
			val, err := r.ReadExpression()
			if err != nil {
				return nil, err
			}
			entries[key] = val
		}
		return ast.Map{Entries: entries}, nil
	case tagClosure:
		nParams, err := r.readUvarint("closure expression param count")
		if err != nil {
			return nil, err
		}
		params := make([]ident.Ident, nParams)
		for i := range params {
			params[i], err = r.readIdent("closure expression param")
			if err != nil {
				return nil, err
			}
		}
		body, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		return ast.Closure{Params: params, Body: body}, nil
	case tagUnaryOp:
		op, err := r.readUvarint("unary op")
		if err != nil {
			return nil, err
		}
		inner, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnOp(op), Expr: inner}, nil
	case tagBinaryOp:
		op, err := r.readUvarint("binary op")
		if err != nil {
			return nil, err
		}
		lhs, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		rhs, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		return ast.BinaryOp{Op: ast.BinOp(op), Lhs: lhs, Rhs: rhs}, nil
	case tagCall:
		callee, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		n, err := r.readUvarint("call arg count")
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expression, n)
		for i := range args {
			args[i], err = r.ReadExpression()
			if err != nil {
				return nil, err
			}
		}
		return ast.Call{Callee: callee, Args: args}, nil
	case tagScope:
		n, err := r.readUvarint("scope length")
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, evalerr.New(evalerr.KindInvalidEmptyScope, "decoded Scope has zero expressions")
		}
		body := make([]ast.Expression, n)
		for i := range body {
			body[i], err = r.ReadExpression()
			if err != nil {
				return nil, err
			}
		}
		return ast.Scope{Body: body}, nil
	case tagRef:
		name, err := r.readIdent("ref name")
		if err != nil {
			return nil, err
		}
		return ast.Ref{Name: name}, nil
	case tagSet:
		receiver, err := r.readReceiver()
		if err != nil {
			return nil, err
		}
		val, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		return ast.Set{Receiver: receiver, Value: val}, nil
	case tagMemberAccess:
		target, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		index, err := r.ReadExpression()
		if err != nil {
			return nil, err
		}
		return ast.MemberAccess{Target: target, Index: index}, nil
	default:
		return nil, r.decodeErr("expression", fmt.Errorf("unknown expression tag %d", tag))
	}
}

func (r *Reader) readReceiver() (ast.Receiver, error) {
	tag, err := r.readUvarint("receiver tag")
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagReceiverIgnore:
		return ast.IgnoreReceiver{}, nil
	case tagReceiverLet:
		name, err := r.readIdent("let receiver name")
		if err != nil {
			return nil, err
		}
		return ast.LetReceiver{Name: name}, nil
	case tagReceiverSet:
		root, err := r.readIdent("set receiver root")
		if err != nil {
			return nil, err
		}
		n, err := r.readUvarint("set receiver index count")
		if err != nil {
			return nil, err
		}
		indices := make([]ast.Expression, n)
		for i := range indices {
			indices[i], err = r.ReadExpression()
			if err != nil {
				return nil, err
			}
		}
		return ast.SetReceiver{Root: root, Indices: indices}, nil
	default:
		return nil, r.decodeErr("receiver", fmt.Errorf("unknown receiver tag %d", tag))
	}
}
