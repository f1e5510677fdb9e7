// Package wire implements the deterministic binary (de)serialization of
// ast.Expression and ast.Value described by spec §6.4: a tagged,
// length-prefixed format where every tagged union is a varint
// discriminant followed by its payload, every sequence is a varint
// length followed by that many elements, every string is UTF-8 with a
// varint byte length, and every map is a varint count followed by
// sorted (key, value) pairs.
//
// Structurally grounded on the teacher's db/writer.go + db/reader.go
// (a Writer/Reader struct, one write<Type>/read<Type> method per
// payload kind, type-tag-first framing); the MOO database format itself
// is newline-delimited text, which spec §6.4 explicitly does not ask
// for, so the framing here is varint binary instead (see DESIGN.md).
package wire

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/evalerr"
	"github.com/zannabianca1997/dices-go/ident"
)

// Writer accumulates a wire-format payload. Zero value is ready to use.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) writeUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *Writer) writeVarint(v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *Writer) writeByte(b byte) { w.buf.WriteByte(b) }

func (w *Writer) writeString(s string) {
	w.writeUvarint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *Writer) writeIdent(id ident.Ident) {
	w.writeString(id.String())
}

// WriteValue encodes a Value: a varint Kind discriminant followed by the
// kind-specific payload (spec §6.4, §3.2).
func (w *Writer) WriteValue(v ast.Value) error {
	w.writeUvarint(uint64(v.Kind()))
	switch val := v.(type) {
	case ast.NullValue:
		// no payload
	case ast.BoolValue:
		if val.Value() {
			w.writeByte(1)
		} else {
			w.writeByte(0)
		}
	case ast.NumberValue:
		w.writeVarint(val.Value())
	case ast.StringValue:
		w.writeString(val.Value())
	case ast.ListValue:
		elems := val.Elements()
		w.writeUvarint(uint64(len(elems)))
		for _, e := range elems {
			if err := w.WriteValue(e); err != nil {
				return err
			}
		}
	case ast.MapValue:
		w.writeUvarint(uint64(val.Len()))
		var err error
		val.Each(func(key string, v ast.Value) {
			if err != nil {
				return
			}
			w.writeString(key)
			err = w.WriteValue(v)
		})
		if err != nil {
			return err
		}
	case ast.ClosureValue:
		w.writeUvarint(uint64(len(val.Params)))
		for _, p := range val.Params {
			w.writeIdent(p)
		}
		w.writeUvarint(uint64(val.Captures.Len()))
		var err error
		val.Captures.Each(func(key string, v ast.Value) {
			if err != nil {
				return
			}
			w.writeString(key)
			err = w.WriteValue(v)
		})
		if err != nil {
			return err
		}
		if err := w.WriteExpression(val.Body); err != nil {
			return err
		}
	case ast.IntrinsicValue:
		w.writeString(val.Name)
	}
	return nil
}

// expression tags. Not ast.Kind (that enumerates Values): Expression has
// its own closed set of node kinds (spec §3.4).
const (
	tagConst = iota
	tagList
	tagMap
	tagClosure
	tagUnaryOp
	tagBinaryOp
	tagCall
	tagScope
	tagRef
	tagSet
	tagMemberAccess
)

const (
	tagReceiverIgnore = iota
	tagReceiverLet
	tagReceiverSet
)

// WriteExpression encodes an ast.Expression node (spec §3.4, §6.4).
func (w *Writer) WriteExpression(e ast.Expression) error {
	switch expr := e.(type) {
	case ast.Const:
		w.writeUvarint(tagConst)
		return w.WriteValue(expr.Value)
	case ast.List:
		w.writeUvarint(tagList)
		w.writeUvarint(uint64(len(expr.Elements)))
		for _, el := range expr.Elements {
			if err := w.WriteExpression(el); err != nil {
				return err
			}
		}
	case ast.Map:
		w.writeUvarint(tagMap)
		keys := sortedKeys(expr.Entries)
		w.writeUvarint(uint64(len(keys)))
		for _, k := range keys {
			w.writeString(k)
			if err := w.WriteExpression(expr.Entries[k]); err != nil {
				return err
			}
		}
	case ast.Closure:
		w.writeUvarint(tagClosure)
		w.writeUvarint(uint64(len(expr.Params)))
		for _, p := range expr.Params {
			w.writeIdent(p)
		}
		return w.WriteExpression(expr.Body)
	case ast.UnaryOp:
		w.writeUvarint(tagUnaryOp)
		w.writeUvarint(uint64(expr.Op))
		return w.WriteExpression(expr.Expr)
	case ast.BinaryOp:
		w.writeUvarint(tagBinaryOp)
		w.writeUvarint(uint64(expr.Op))
		if err := w.WriteExpression(expr.Lhs); err != nil {
			return err
		}
		return w.WriteExpression(expr.Rhs)
	case ast.Call:
		w.writeUvarint(tagCall)
		if err := w.WriteExpression(expr.Callee); err != nil {
			return err
		}
		w.writeUvarint(uint64(len(expr.Args)))
		for _, a := range expr.Args {
			if err := w.WriteExpression(a); err != nil {
				return err
			}
		}
	case ast.Scope:
		// spec §3.4's Scope invariant (non-empty body) already forbids
		// constructing such a node; encode-side rejection is an
		// additive safety net mirroring the decode-side InvalidEmptyScope
		// check (spec §6.4).
		if len(expr.Body) == 0 {
			return evalerr.New(evalerr.KindInvalidEmptyScope, "cannot encode an empty Scope")
		}
		w.writeUvarint(tagScope)
		w.writeUvarint(uint64(len(expr.Body)))
		for _, el := range expr.Body {
			if err := w.WriteExpression(el); err != nil {
				return err
			}
		}
	case ast.Ref:
		w.writeUvarint(tagRef)
		w.writeIdent(expr.Name)
	case ast.Set:
		w.writeUvarint(tagSet)
		if err := w.writeReceiver(expr.Receiver); err != nil {
			return err
		}
		return w.WriteExpression(expr.Value)
	case ast.MemberAccess:
		w.writeUvarint(tagMemberAccess)
		if err := w.WriteExpression(expr.Target); err != nil {
			return err
		}
		return w.WriteExpression(expr.Index)
	}
	return nil
}

func (w *Writer) writeReceiver(r ast.Receiver) error {
	switch recv := r.(type) {
	case ast.IgnoreReceiver:
		w.writeUvarint(tagReceiverIgnore)
	case ast.LetReceiver:
		w.writeUvarint(tagReceiverLet)
		w.writeIdent(recv.Name)
	case ast.SetReceiver:
		w.writeUvarint(tagReceiverSet)
		w.writeIdent(recv.Root)
		w.writeUvarint(uint64(len(recv.Indices)))
		for _, idx := range recv.Indices {
			if err := w.WriteExpression(idx); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]ast.Expression) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
