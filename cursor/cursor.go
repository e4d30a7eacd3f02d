// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parsed JSON value tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/jsonparse"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T jsonparse.Value](v jsonparse.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	tv, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return tv, nil
}

// A Cursor is a pointer that navigates into the structure of a value tree.
type Cursor struct {
	org jsonparse.Value
	stk []jsonparse.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin jsonparse.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jsonparse.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() jsonparse.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []jsonparse.Value {
	return append([]jsonparse.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting positions in arrays or objects), or functions
// (see below).  If the path cannot be completely consumed, traversal stops at
// the last value reached and an error is recorded. Use Err to recover the
// error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the first pair with that key.
//
// If a path element is an integer, the corresponding value must be an array
// or an object. Positions are 1-based, as for Array.Index: 1 is the first
// element, and for an object the value of the first pair. Negative positions
// count backward from the end (-1 is last, -2 second last). Zero and
// positions past the end are errors.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jsonparse.Value) (jsonparse.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(*jsonparse.Object)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, elt)
			}
			p := o.Find(t)
			if p == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(p.Value)

		case int:
			switch e := cur.(type) {
			case *jsonparse.Array:
				i, ok := fixPosition(e.Len(), t)
				if !ok {
					return c.setErrorf("array position %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.Index(i))
			case *jsonparse.Object:
				i, ok := fixPosition(e.Len(), t)
				if !ok {
					return c.setErrorf("object position %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.Pairs[i-1].Value)
			default:
				return c.setErrorf("cannot traverse %T with %v", cur, elt)
			}

		case func(jsonparse.Value) (jsonparse.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v jsonparse.Value) jsonparse.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

// fixPosition converts a 1-based or negative position into a 1-based
// position among n, and reports whether it is in range.
func fixPosition(n, i int) (int, bool) {
	if i < 0 {
		i += n + 1
	}
	return i, i >= 1 && i <= n
}
