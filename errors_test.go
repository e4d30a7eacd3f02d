// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jsonparse"
)

func TestCodeDescription(t *testing.T) {
	tests := []struct {
		code jsonparse.Code
		want string
	}{
		{jsonparse.ErrFile, "File not found."},
		{jsonparse.ErrMemory, "Out of memory."},
		{jsonparse.ErrObjectOpen, "Expected '{' at start of object."},
		{jsonparse.ErrObjectClose, "Expected '}' at end of object."},
		{jsonparse.ErrPairSeparator, "Expected ':' after key."},
		{jsonparse.ErrStringOpen, `Expected '"' at start of string or key.`},
		{jsonparse.ErrStringClose, `Expected '"' at end of string or key.`},
		{jsonparse.ErrStringEscape, "Illegal escape sequence in string."},
		{jsonparse.ErrValue, "Illegal value."},
		{jsonparse.ErrArrayOpen, "Expected '[' at start of array."},
		{jsonparse.ErrArrayClose, "Expected ']' at end of array."},
		{jsonparse.ErrTrue, "Expected 'true'."},
		{jsonparse.ErrFalse, "Expected 'false'."},
		{jsonparse.ErrNull, "Expected 'null'."},
		{jsonparse.ErrFloating, "Malformed floating-point number."},
		{jsonparse.ErrInteger, "Malformed integer number."},
		{jsonparse.ErrTrailing, "Unexpected content after root object."},
	}
	for _, test := range tests {
		got, ok := test.code.Description()
		if !ok || got != test.want {
			t.Errorf("Description(%d): got %q, %v; want %q, true", test.code, got, ok, test.want)
		}
		if got := test.code.Error(); got != test.want {
			t.Errorf("Error(%d): got %q, want %q", test.code, got, test.want)
		}
	}

	for _, c := range []jsonparse.Code{0, -1, jsonparse.ErrTrailing + 1, 1000} {
		if got, ok := c.Description(); ok {
			t.Errorf("Description(%d): got %q, true; want false", c, got)
		}
		if got := c.Error(); !strings.HasPrefix(got, "unknown error code") {
			t.Errorf("Error(%d): got %q, want unknown", c, got)
		}
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := jsonparse.Parse(strings.NewReader("{\n  \"a\": tru }"))
	var serr *jsonparse.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got error %v (%[1]T), want *SyntaxError", err)
	}
	if got, want := err.Error(), "at 2:10: Expected 'true'."; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if got := jsonparse.CodeOf(err); got != jsonparse.ErrTrue {
		t.Errorf("CodeOf: got %v, want %v", got, jsonparse.ErrTrue)
	}
	if !errors.Is(err, jsonparse.ErrTrue) || errors.Is(err, jsonparse.ErrNull) {
		t.Errorf("Is: error %v does not match its code", err)
	}

	wrapped := fmt.Errorf("loading config: %w", err)
	if got := jsonparse.CodeOf(wrapped); got != jsonparse.ErrTrue {
		t.Errorf("CodeOf(wrapped): got %v, want %v", got, jsonparse.ErrTrue)
	}
	if got := jsonparse.CodeOf(nil); got != 0 {
		t.Errorf("CodeOf(nil): got %v, want 0", got)
	}
	if got := jsonparse.CodeOf(errors.New("other")); got != 0 {
		t.Errorf("CodeOf(other): got %v, want 0", got)
	}

	// Errors without a location report only the description.
	nerr := &jsonparse.SyntaxError{Code: jsonparse.ErrFile}
	if got, want := nerr.Error(), "File not found."; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}
