// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse

import (
	"errors"
	"fmt"
)

// A Code identifies the category of a parse failure. The values of Code are
// a closed set; each one has a fixed human-readable description.
//
// A Code satisfies the error interface, so the constants below may be used
// directly as sentinel errors with errors.Is.
type Code int

// Constants defining the valid Code values.
const (
	codeNone Code = iota // no error

	ErrFile          // the input could not be opened
	ErrMemory        // a buffer could not grow
	ErrObjectOpen    // missing "{"
	ErrObjectClose   // missing "}"
	ErrPairSeparator // missing ":" after a key
	ErrStringOpen    // missing opening quote
	ErrStringClose   // missing closing quote
	ErrStringEscape  // invalid \-escape in a string
	ErrValue         // no value can start here
	ErrArrayOpen     // missing "["
	ErrArrayClose    // missing "]"
	ErrTrue          // malformed literal true
	ErrFalse         // malformed literal false
	ErrNull          // malformed literal null
	ErrFloating      // malformed floating-point number
	ErrInteger       // malformed integer
	ErrTrailing      // content after the root object

	codeMax // past the last meaningful code
)

var codeDesc = [...]string{
	ErrFile:          "File not found.",
	ErrMemory:        "Out of memory.",
	ErrObjectOpen:    "Expected '{' at start of object.",
	ErrObjectClose:   "Expected '}' at end of object.",
	ErrPairSeparator: "Expected ':' after key.",
	ErrStringOpen:    `Expected '"' at start of string or key.`,
	ErrStringClose:   `Expected '"' at end of string or key.`,
	ErrStringEscape:  "Illegal escape sequence in string.",
	ErrValue:         "Illegal value.",
	ErrArrayOpen:     "Expected '[' at start of array.",
	ErrArrayClose:    "Expected ']' at end of array.",
	ErrTrue:          "Expected 'true'.",
	ErrFalse:         "Expected 'false'.",
	ErrNull:          "Expected 'null'.",
	ErrFloating:      "Malformed floating-point number.",
	ErrInteger:       "Malformed integer number.",
	ErrTrailing:      "Unexpected content after root object.",
}

// Description returns the human-readable description of c. It reports false
// if c is not one of the named error codes.
func (c Code) Description() (string, bool) {
	if c <= codeNone || c >= codeMax {
		return "", false
	}
	return codeDesc[c], true
}

// Error satisfies the error interface.
func (c Code) Error() string {
	if desc, ok := c.Description(); ok {
		return desc
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Code     Code
	Location LineCol // position of the lookahead when the error occurred

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Location == (LineCol{}) {
		return s.Code.Error()
	}
	return fmt.Sprintf("at %s: %s", s.Location, s.Code.Error())
}

// Unwrap supports error wrapping. It reports the error code, and the
// underlying I/O error if there was one.
func (s *SyntaxError) Unwrap() []error {
	if s.err != nil {
		return []error{s.Code, s.err}
	}
	return []error{s.Code}
}

// CodeOf reports the error code carried by err. If err is nil, or does not
// wrap a Code, CodeOf returns 0.
func CodeOf(err error) Code {
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return codeNone
}
