// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse

// initialCapacity is the starting capacity of every growable buffer.
const initialCapacity = 16

// A buffer is a growable sequence of elements. Its capacity begins at
// initialCapacity and doubles each time it fills, but never exceeds limit
// when limit > 0.
type buffer[T any] struct {
	buf   []T
	limit int
}

func newBuffer[T any](limit int) *buffer[T] {
	n := initialCapacity
	if limit > 0 && limit < n {
		n = limit
	}
	return &buffer[T]{buf: make([]T, 0, n), limit: limit}
}

// reserve ensures there is room for one more element, growing the buffer if
// necessary. It reports false if the buffer is full and cannot grow.
func (b *buffer[T]) reserve() bool {
	if len(b.buf) < cap(b.buf) {
		return true
	}
	n := 2 * cap(b.buf)
	if b.limit > 0 && n > b.limit {
		n = b.limit
	}
	if n <= len(b.buf) {
		return false
	}
	grown := make([]T, len(b.buf), n)
	copy(grown, b.buf)
	b.buf = grown
	return true
}

// push appends v. The caller must have reserved space for it.
func (b *buffer[T]) push(v T) { b.buf = append(b.buf, v) }

// add reserves space for v and appends it, or reports false.
func (b *buffer[T]) add(v T) bool {
	if !b.reserve() {
		return false
	}
	b.push(v)
	return true
}

// take returns the contents of b, trimmed to length, and empties b.
// An empty buffer yields nil.
func (b *buffer[T]) take() []T {
	if len(b.buf) == 0 {
		b.buf = nil
		return nil
	}
	out := b.buf[:len(b.buf):len(b.buf)]
	b.buf = nil
	return out
}
