// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jsonparse"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input jsonparse.Value
		want  string
	}{
		{jsonparse.Null, "null"},

		{Bool(false), "false"},
		{Bool(true), "true"},

		{Str(""), `""`},
		{Str("a \t b"), "\"a \t b\""},

		{Float(-0.00239), `-0.00239`},
		{Float(3.14), `3.14`},
		{Float(2), `2.0`},
		{Float(-0.0), `0.0`},
		{Float(math.Copysign(0, -1)), `-0.0`},
		{Float(1e21), `1000000000000000000000.0`},
		{Float(math.NaN()), `null`},
		{Float(math.Inf(1)), `null`},

		{Int(0), `0`},
		{Int(15), `15`},
		{Int(-25), `-25`},
		{Int(math.MinInt64), `-9223372036854775808`},

		{Arr(), `[]`},
		{Arr(Bool(false)), `[false]`},
		{Arr(Bool(true), Int(199)), `[true,199]`},
		{Arr(Str("free"), Str("your"), Str("mind")), `["free","your","mind"]`},

		{Obj(), `{}`},
		{Obj(Field("xs", jsonparse.Null)), `{"xs":null}`},
		{Obj(
			Field("name", Str("Dennis")),
			Field("age", Int(37)),
			Field("isOld", Bool(false)),
		), `{"name":"Dennis","age":37,"isOld":false}`},

		{Obj(
			Field("values", Arr(Int(5), Int(10), Bool(true))),
			Field("page", Obj(
				Field("token", Str("xyz-pdq-zvm")),
				Field("count", Int(100)),
			)),
		), `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}

		var buf bytes.Buffer
		if err := jsonparse.Serialize(&buf, test.input); err != nil {
			t.Errorf("Serialize %+v: unexpected error: %v", test.input, err)
		} else if buf.String() != test.want {
			t.Errorf("Serialize %+v: got %s, want %s", test.input, buf.String(), test.want)
		}
	}
}

func TestEscaping(t *testing.T) {
	const input = `{"say \"hi\"":"back\\slash\nnewline","plain":["a\"b"]}`
	obj := mustParse(t, input)

	// The default rendering does not escape string contents.
	if got, want := obj.JSON(), "{\"say \"hi\"\":\"back\\slash\nnewline\",\"plain\":[\"a\"b\"]}"; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	if _, err := jsonparse.Parse(strings.NewReader(obj.JSON())); err == nil {
		t.Error("Parse unescaped output: got nil error")
	}

	// The escaped rendering reproduces the input, and round-trips.
	esc := jsonparse.Escaped(obj)
	if esc != input {
		t.Errorf("Escaped: got %#q, want %#q", esc, input)
	}
	var buf bytes.Buffer
	if err := jsonparse.SerializeEscaped(&buf, obj); err != nil {
		t.Fatalf("SerializeEscaped: unexpected error: %v", err)
	} else if buf.String() != esc {
		t.Errorf("SerializeEscaped: got %#q, want %#q", buf.String(), esc)
	}
	again := mustParse(t, esc)
	if diff := cmp.Diff(obj, again); diff != "" {
		t.Errorf("Round trip (-want, +got):\n%s", diff)
	}

	if got, want := jsonparse.Quote("a\"b\\c\nd"), `"a\"b\\c\nd"`; got != want {
		t.Errorf("Quote: got %#q, want %#q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"a":[]}`,
		`{"a":-0,"b":3.14,"c":[1,2.5,-3.0],"d":{"e":null,"f":[true,false]}}`,
		`{"dup":1,"dup":2}`,
		`{"wide":"é世界","deep":[[[[[{"x":[[]]}]]]]]}`,
		`{"big":9223372036854775807,"small":0.000001,"frac":123456.789}`,
	}
	for _, input := range inputs {
		obj := mustParse(t, input)
		again := mustParse(t, obj.JSON())
		if diff := cmp.Diff(obj, again); diff != "" {
			t.Errorf("Input %#q: round trip (-want, +got):\n%s", input, diff)
		}
	}
}

func TestSerializeInvalid(t *testing.T) {
	var nilArray *jsonparse.Array
	var nilObject *jsonparse.Object
	mtest.MustPanic(t, func() { Arr(nil).JSON() })
	mtest.MustPanic(t, func() { Obj(nil).JSON() })
	mtest.MustPanic(t, func() { Arr(nilArray).JSON() })
	mtest.MustPanic(t, func() { Arr(nilObject).JSON() })
	mtest.MustPanic(t, func() { jsonparse.Serialize(new(bytes.Buffer), nil) })
	mtest.MustPanic(t, func() { jsonparse.Escaped(Arr(Obj(Field("x", nil)))) })
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestSerializeError(t *testing.T) {
	if err := jsonparse.Serialize(errWriter{}, Obj(Field("a", Int(1)))); err == nil {
		t.Error("Serialize: got nil error from failing writer")
	}
}

func TestArray(t *testing.T) {
	a := Arr(Int(1), Int(2))
	a.Append(Str("three"))
	if a.Len() != 3 {
		t.Errorf("Len: got %d, want 3", a.Len())
	}
	if got := a.Index(1); got != Int(1) {
		t.Errorf("Index(1): got %v, want 1", got)
	}
	if got := a.Index(3); got != Str("three") {
		t.Errorf("Index(3): got %v, want three", got)
	}
	mtest.MustPanic(t, func() { a.Index(0) })
	mtest.MustPanic(t, func() { a.Index(4) })
	if a.Kind() != jsonparse.ArrayKind {
		t.Errorf("Kind: got %v, want array", a.Kind())
	}
}

func TestObject(t *testing.T) {
	obj := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)
	if p := obj.Find("a"); p == nil || p.Value != Int(1) {
		t.Errorf("Find(a): got %v, want first pair", p)
	}
	if p := obj.Find("c"); p != nil {
		t.Errorf("Find(c): got %v, want nil", p)
	}
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		input jsonparse.Value
		want  jsonparse.Kind
		name  string
	}{
		{jsonparse.Null, jsonparse.NullKind, "null"},
		{Bool(true), jsonparse.BoolKind, "boolean"},
		{Int(1), jsonparse.IntegerKind, "integer"},
		{Float(1), jsonparse.FloatingKind, "floating"},
		{Str("s"), jsonparse.StringKind, "string"},
		{Arr(), jsonparse.ArrayKind, "array"},
		{Obj(), jsonparse.ObjectKind, "object"},
	}
	for _, test := range tests {
		if got := test.input.Kind(); got != test.want {
			t.Errorf("Kind %v: got %v, want %v", test.input, got, test.want)
		}
		if got := test.want.String(); got != test.name {
			t.Errorf("Kind name: got %q, want %q", got, test.name)
		}
	}
	if got := jsonparse.Kind(100).String(); got != "invalid" {
		t.Errorf("Kind(100): got %q, want invalid", got)
	}
}

func TestFree(t *testing.T) {
	tests := []struct {
		input jsonparse.Value
		want  int
	}{
		{nil, 0},
		{jsonparse.Null, 1},
		{Int(5), 1},
		{Str("x"), 1},
		{Arr(), 1},
		{Arr(Int(1), Arr(Int(2), Int(3))), 5},
		{Obj(Field("a", Int(1)), Field("b", Obj(Field("c", Arr(jsonparse.Null))))), 5},
	}
	for _, test := range tests {
		if got := jsonparse.Free(test.input); got != test.want {
			t.Errorf("Free %v: got %d, want %d", test.input, got, test.want)
		}
	}

	p := Field("k", Arr(Int(1)))
	obj := Obj(p)
	inner := p.Value.(*jsonparse.Array)
	if n := jsonparse.Free(obj); n != 3 {
		t.Errorf("Free: got %d, want 3", n)
	}
	if p.Key != "" || p.Value != nil || inner.Len() != 0 || obj.Len() != 0 {
		t.Errorf("Free did not clear the tree: pair=%+v inner=%d", p, inner.Len())
	}
}
