// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonparse implements a recursive-descent parser that reads JSON text
// into a tree of typed values, and a serializer that writes such trees back
// out as compact text.
//
// # Parsing
//
// The input is a stream of Unicode text, read one rune at a time. The root of
// the input must be a single JSON object, optionally surrounded by
// whitespace. Call Parse with an io.Reader:
//
//	obj, err := jsonparse.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// In case of error, no partial tree is returned. The error has concrete type
// *jsonparse.SyntaxError, and carries one of a fixed set of error codes that
// can be tested with errors.Is:
//
//	if errors.Is(err, jsonparse.ErrObjectClose) {
//	   log.Print("Unterminated object")
//	}
//
// The grammar accepted is a restricted form of JSON:
//
//	object := '{' ws (pair (ws ',' ws pair)*)? ws '}'
//	array  := '[' ws (value (ws ',' ws value)*)? ws ']'
//	pair   := string ws ':' ws value
//
// Numbers are integers or decimal fractions with no exponent. Strings may
// contain any rune; the only escapes are \", \\, and \n. Trailing commas are
// not permitted.
//
// To configure buffer limits or input handling, construct a Parser:
//
//	p := jsonparse.NewParser()
//	p.LimitBuffer(1 << 20)
//	p.AllowHuJSON(true)
//	obj, err := p.Parse(input)
//
// # Values
//
// A parsed tree is made of the types Null, Bool, Int, Float, String, *Array,
// and *Object, all of which implement the Value interface. Arrays preserve
// the order of their elements, and objects preserve the order of their pairs.
// Object keys are not required to be unique.
//
// Positions in an Array are 1-based: a.Index(1) is the first element and
// a.Index(a.Len()) the last.
//
// # Serialization
//
// Serialize writes the compact text of a value. String contents are written
// without escapes, so strings containing quotation marks or backslashes do
// not round-trip. SerializeEscaped escapes them.
package jsonparse
