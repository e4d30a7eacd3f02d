// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jsonparse/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	var sb strings.Builder
	sb.Grow(len(src) + 2)
	sb.WriteByte('"')
	sb.Write(escape.Quote(mem.S(src)))
	sb.WriteByte('"')
	return sb.String()
}

// Serialize writes the compact JSON text of v to w.
//
// String contents, including object keys, are written without escapes, so a
// string that contains a quotation mark, backslash, or newline does not
// produce valid JSON. Use [SerializeEscaped] when the output must be
// re-parsed.
//
// Serialize panics if v or any value it contains is nil or is not one of the
// concrete types described by [Value].
func Serialize(w io.Writer, v Value) error { return serialize(w, v, false) }

// SerializeEscaped is as [Serialize], but string contents are escaped.
func SerializeEscaped(w io.Writer, v Value) error { return serialize(w, v, true) }

// Escaped renders v as compact JSON text with escaped string contents.
func Escaped(v Value) string { return toJSON(v, true) }

func serialize(w io.Writer, v Value, esc bool) error {
	bw := bufio.NewWriter(w)
	e := encoder{w: bw, escape: esc}
	e.value(v)
	return bw.Flush()
}

func toJSON(v Value, esc bool) string {
	var sb strings.Builder
	e := encoder{w: &sb, escape: esc}
	e.value(v)
	return sb.String()
}

type writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// An encoder writes the text of a value tree. Write errors are not reported
// here; bufio.Writer retains them for Flush, and strings.Builder has none.
type encoder struct {
	w      writer
	escape bool
	tmp    [32]byte
}

func (e *encoder) value(v Value) {
	switch t := v.(type) {
	case nullValue:
		e.w.WriteString("null")
	case Bool:
		if t {
			e.w.WriteString("true")
		} else {
			e.w.WriteString("false")
		}
	case Int:
		e.w.Write(strconv.AppendInt(e.tmp[:0], int64(t), 10))
	case Float:
		e.w.Write(appendFloat(e.tmp[:0], float64(t)))
	case String:
		e.str(string(t))
	case *Array:
		if t == nil {
			panic("serialize: nil array")
		}
		e.w.WriteByte('[')
		for i, elt := range t.Values {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.value(elt)
		}
		e.w.WriteByte(']')
	case *Object:
		if t == nil {
			panic("serialize: nil object")
		}
		e.w.WriteByte('{')
		for i, p := range t.Pairs {
			if p == nil {
				panic(fmt.Sprintf("serialize: nil pair at offset %d", i))
			}
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.str(p.Key)
			e.w.WriteByte(':')
			e.value(p.Value)
		}
		e.w.WriteByte('}')
	default:
		panic(fmt.Sprintf("serialize: invalid value %T", v))
	}
}

func (e *encoder) str(s string) {
	e.w.WriteByte('"')
	if e.escape {
		e.w.Write(escape.Quote(mem.S(s)))
	} else {
		e.w.WriteString(s)
	}
	e.w.WriteByte('"')
}

// appendFloat appends the shortest decimal text for f that parses back to
// the same value. The text always has a fractional part, so that it is read
// back as a floating-point value rather than an integer. Values that have no
// JSON representation are rendered as null.
func appendFloat(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, "null"...)
	}
	out := strconv.AppendFloat(buf, f, 'f', -1, 64)
	if mem.IndexByte(mem.B(out[len(buf):]), '.') < 0 {
		out = append(out, ".0"...)
	}
	return out
}
