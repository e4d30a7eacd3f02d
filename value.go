// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse

import (
	"fmt"
)

// A Value is a node of a JSON value tree. The concrete type of a Value is one
// of Null, Bool, Int, Float, String, *Array, or *Object.
type Value interface {
	// Kind reports the kind of the value.
	Kind() Kind

	// JSON renders the value as compact JSON text. String contents are
	// written as-is, without escapes; use [Escaped] to escape them.
	JSON() string
}

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	InvalidKind Kind = iota
	NullKind
	BoolKind
	IntegerKind
	FloatingKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	InvalidKind:  "invalid",
	NullKind:     "null",
	BoolKind:     "boolean",
	IntegerKind:  "integer",
	FloatingKind: "floating",
	StringKind:   "string",
	ArrayKind:    "array",
	ObjectKind:   "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidKind]
	}
	return kindStr[k]
}

type nullValue struct{}

// Null is the null constant.
var Null Value = nullValue{}

func (nullValue) Kind() Kind     { return NullKind }
func (nullValue) JSON() string   { return "null" }
func (nullValue) String() string { return "Null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind       { return BoolKind }
func (b Bool) JSON() string   { return toJSON(b, false) }
func (b Bool) Value() bool    { return bool(b) }
func (b Bool) String() string { return fmt.Sprintf("Bool(%v)", bool(b)) }

// An Int is an integer value.
type Int int64

func (Int) Kind() Kind       { return IntegerKind }
func (z Int) JSON() string   { return toJSON(z, false) }
func (z Int) Int64() int64   { return int64(z) }
func (z Int) String() string { return fmt.Sprintf("Int(%d)", int64(z)) }

// A Float is a floating-point value.
type Float float64

func (Float) Kind() Kind         { return FloatingKind }
func (f Float) JSON() string     { return toJSON(f, false) }
func (f Float) Float64() float64 { return float64(f) }
func (f Float) String() string   { return fmt.Sprintf("Float(%v)", float64(f)) }

// A String is a string value, with escapes already decoded.
type String string

func (String) Kind() Kind       { return StringKind }
func (s String) JSON() string   { return toJSON(s, false) }
func (s String) String() string { return fmt.Sprintf("String(%q)", string(s)) }

// An Array is an ordered sequence of values.
type Array struct {
	Values []Value
}

// NewArray constructs an array containing the given values.
func NewArray(vs ...Value) *Array { return &Array{Values: vs} }

func (*Array) Kind() Kind       { return ArrayKind }
func (a *Array) JSON() string   { return toJSON(a, false) }
func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", a.Len()) }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// Index returns the element of a at position i. Positions are 1-based: the
// first element is at position 1 and the last at position a.Len().
// Index panics if i is out of range.
func (a *Array) Index(i int) Value {
	if i < 1 || i > len(a.Values) {
		panic(fmt.Sprintf("array position %d out of range [1..%d]", i, len(a.Values)))
	}
	return a.Values[i-1]
}

// Append adds vs to the end of a.
func (a *Array) Append(vs ...Value) { a.Values = append(a.Values, vs...) }

// An Object is an ordered collection of key-value pairs. Keys are not
// required to be unique, and the order of pairs is preserved.
type Object struct {
	Pairs []*Pair
}

// NewObject constructs an object containing the given pairs.
func NewObject(ps ...*Pair) *Object { return &Object{Pairs: ps} }

func (*Object) Kind() Kind       { return ObjectKind }
func (o *Object) JSON() string   { return toJSON(o, false) }
func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", o.Len()) }

// Len reports the number of pairs in o.
func (o *Object) Len() int { return len(o.Pairs) }

// Find returns the first pair of o with the given key, or nil.
func (o *Object) Find(key string) *Pair {
	for _, p := range o.Pairs {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// A Pair is a single key-value pair belonging to an Object.
type Pair struct {
	Key   string
	Value Value
}

// Field constructs an object pair with the given key and value.
func Field(key string, value Value) *Pair { return &Pair{Key: key, Value: value} }

func (p *Pair) String() string { return fmt.Sprintf("Pair(key=%q)", p.Key) }

// Free releases the contents of v and all the values it owns, and reports the
// number of values released. Each value in the tree is counted once,
// including v itself. After Free, v and its former children must not be used;
// arrays and objects in the tree are left empty.
func Free(v Value) int {
	switch t := v.(type) {
	case nil:
		return 0
	case *Array:
		if t == nil {
			return 0
		}
		n := 1
		for _, elt := range t.Values {
			n += Free(elt)
		}
		clear(t.Values)
		t.Values = nil
		return n
	case *Object:
		if t == nil {
			return 0
		}
		n := 1
		for _, p := range t.Pairs {
			if p != nil {
				n += Free(p.Value)
				p.Key, p.Value = "", nil
			}
		}
		clear(t.Pairs)
		t.Pairs = nil
		return n
	default:
		return 1
	}
}
