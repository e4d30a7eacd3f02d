// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse

import (
	"bufio"
	"io"

	"go4.org/mem"
)

// eof is the lookahead value at the end of the input.
const eof rune = -1

// A scanner holds the single-rune lookahead of a parse and the error latch.
// Every parsing method reads and updates the same scanner, so that the first
// error recorded is the one reported to the caller.
type scanner struct {
	r     *bufio.Reader
	ch    rune // current lookahead, or eof
	err   Code // first error latched, or codeNone
	ioErr error
	limit int // maximum buffer capacity, 0 for no limit

	line, col int     // 0-based position of the lookahead
	at        LineCol // location where err latched
}

// newScanner constructs a scanner that consumes input from r, positioned at
// the first rune of the input.
func newScanner(r io.Reader, limit int) *scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &scanner{r: br, limit: limit}
	s.read()
	return s
}

// advance moves the lookahead to the next rune of the input. A read error is
// treated as the end of the input.
func (s *scanner) advance() {
	switch s.ch {
	case eof:
		return
	case '\n':
		s.line++
		s.col = 0
	default:
		s.col++
	}
	s.read()
}

func (s *scanner) read() {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF && s.ioErr == nil {
			s.ioErr = err
		}
		s.ch = eof
		return
	}
	s.ch = ch
}

// fail latches code as the error of the parse, unless an error has already
// been recorded.
func (s *scanner) fail(code Code) {
	if s.err == codeNone {
		s.err = code
		s.at = LineCol{Line: s.line + 1, Column: s.col}
	}
}

// failed reports whether an error has been latched.
func (s *scanner) failed() bool { return s.err != codeNone }

func (s *scanner) syntaxError() *SyntaxError {
	return &SyntaxError{Code: s.err, Location: s.at, err: s.ioErr}
}

// skipSpace advances past whitespace.
func (s *scanner) skipSpace() {
	for isSpace(s.ch) {
		s.advance()
	}
}

// match consumes ch if it is the lookahead, and reports whether it did so.
// If ch does not match, no input is consumed.
func (s *scanner) match(ch rune) bool {
	if s.ch != ch {
		return false
	}
	s.advance()
	return true
}

// matchLiteral consumes the runes of lit in order. It stops at the first rune
// that does not match and reports false; runes matched before that point
// remain consumed.
func (s *scanner) matchLiteral(lit mem.RO) bool {
	for lit.Len() != 0 {
		r, n := mem.DecodeRune(lit)
		if !s.match(r) {
			return false
		}
		lit = lit.SliceFrom(n)
	}
	return true
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
