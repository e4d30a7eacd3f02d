// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonparse

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tailscale/hujson"
	"go4.org/mem"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A Parser parses JSON text into value trees. The zero value is ready for use
// and parses standard input with no buffer limit.
type Parser struct {
	limit  int  // maximum buffer capacity, 0 for no limit
	hujson bool // standardize HuJSON input before parsing
	bom    bool // transcode input with a byte-order mark
}

// NewParser constructs a new Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// LimitBuffer sets the maximum number of elements any single growable buffer
// may hold: the runes of a string or number, the values of an array, or the
// pairs of an object. A buffer that would need to grow past n causes the
// parse to fail with ErrMemory. If n <= 0, buffers are unlimited.
//
// The limit does not bound the total size of the input. In particular, when
// AllowHuJSON is enabled the whole input is read into memory before the limit
// is applied.
func (p *Parser) LimitBuffer(n int) { p.limit = max(n, 0) }

// AllowHuJSON configures the parser to accept (true) or reject (false) the
// comments and trailing commas of HuJSON (JWCC) input. When enabled, the
// whole input is read and standardized before parsing begins. LimitBuffer
// does not apply to this step, so callers should bound the size of untrusted
// input themselves, for example with io.LimitReader. Input that is not valid
// HuJSON is parsed as given, so that errors are reported in terms of the
// parser's own error codes.
func (p *Parser) AllowHuJSON(ok bool) { p.hujson = ok }

// DecodeBOM configures the parser to check for a leading byte-order mark
// (true) and, if one is found, transcode UTF-16 input to UTF-8 and discard
// the mark. When disabled (false) the input is read as UTF-8.
func (p *Parser) DecodeBOM(ok bool) { p.bom = ok }

// Parse parses r with default settings. See [Parser.Parse].
func Parse(r io.Reader) (*Object, error) { return NewParser().Parse(r) }

// ParseFile parses the contents of the named file with default settings.
// See [Parser.ParseFile].
func ParseFile(path string) (*Object, error) { return NewParser().ParseFile(path) }

// ParseFile opens the named file and parses its contents.  If the file cannot
// be opened, ParseFile reports ErrFile.
func (p *Parser) ParseFile(path string) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SyntaxError{Code: ErrFile, err: err}
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse parses a single JSON object from r, which must contain nothing else
// apart from whitespace. On success, the caller owns the resulting tree.  In
// case of error, no partial tree is returned, and the error has concrete type
// [*SyntaxError]. A nil reader reports ErrFile.
func (p *Parser) Parse(r io.Reader) (*Object, error) {
	if r == nil {
		return nil, &SyntaxError{Code: ErrFile}
	}
	in, err := p.input(r)
	if err != nil {
		return nil, &SyntaxError{Code: ErrFile, err: err}
	}

	s := newScanner(in, p.limit)
	obj := s.parseObject()
	if s.failed() {
		return nil, s.syntaxError()
	}
	s.skipSpace()
	if s.ch != eof {
		Free(obj)
		s.fail(ErrTrailing)
		return nil, s.syntaxError()
	}
	return obj, nil
}

// input applies the configured input transformations to r.
func (p *Parser) input(r io.Reader) (io.Reader, error) {
	if p.bom {
		r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	}
	if !p.hujson {
		return r, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if std, err := hujson.Standardize(data); err == nil {
		data = std
	}
	return bytes.NewReader(data), nil
}

// parseNumber consumes an integer or floating-point number.
// Precondition: isNumStart(s.ch).
func (s *scanner) parseNumber() Value {
	buf := newBuffer[byte](s.limit)

	// The first rune is a sign or a digit; either way it belongs to the number.
	// Any further problem with it is found by the conversion.
	for ok := true; ok; ok = isDigit(s.ch) {
		if !buf.add(byte(s.ch)) {
			s.fail(ErrMemory)
			return nil
		}
		s.advance()
	}

	if s.ch != '.' {
		z, err := mem.ParseInt(mem.B(buf.buf), 10, 64)
		if err != nil {
			s.fail(ErrInteger)
			return nil
		}
		return Int(z)
	}

	if !buf.add('.') {
		s.fail(ErrMemory)
		return nil
	}
	s.advance()

	var nd int
	for isDigit(s.ch) {
		if !buf.add(byte(s.ch)) {
			s.fail(ErrMemory)
			return nil
		}
		s.advance()
		nd++
	}
	if nd == 0 {
		s.fail(ErrFloating)
		return nil
	}
	f, err := mem.ParseFloat(mem.B(buf.buf), 64)
	if err != nil {
		s.fail(ErrFloating)
		return nil
	}
	return Float(f)
}

// parseString consumes a quoted string and returns its unescaped contents.
// The only escapes recognized are \", \\, and \n.
func (s *scanner) parseString() string {
	s.skipSpace()
	if !s.match('"') {
		s.fail(ErrStringOpen)
		return ""
	}

	buf := newBuffer[rune](s.limit)
	for s.ch != '"' && s.ch != eof {
		if !buf.reserve() {
			s.fail(ErrMemory)
			return ""
		}
		ch := s.ch
		if ch == '\\' {
			s.advance()
			switch s.ch {
			case '"', '\\':
				ch = s.ch
			case 'n':
				ch = '\n'
			default:
				s.fail(ErrStringEscape)
				return ""
			}
		}
		buf.push(ch)
		s.advance()
	}

	if !s.match('"') {
		s.fail(ErrStringClose)
		return ""
	}
	return string(buf.buf)
}

// parseValue consumes a value of any type.
func (s *scanner) parseValue() Value {
	s.skipSpace()
	switch s.ch {
	case '"':
		str := s.parseString()
		if s.failed() {
			return nil
		}
		return String(str)
	case 't':
		if !s.matchLiteral(litTrue) {
			s.fail(ErrTrue)
			return nil
		}
		return Bool(true)
	case 'f':
		if !s.matchLiteral(litFalse) {
			s.fail(ErrFalse)
			return nil
		}
		return Bool(false)
	case 'n':
		if !s.matchLiteral(litNull) {
			s.fail(ErrNull)
			return nil
		}
		return Null
	case '[':
		if a := s.parseArray(); a != nil {
			return a
		}
		return nil
	case '{':
		if o := s.parseObject(); o != nil {
			return o
		}
		return nil
	}
	if isNumStart(s.ch) {
		return s.parseNumber()
	}
	s.fail(ErrValue)
	return nil
}

// parsePair consumes a single object member: "key": value
func (s *scanner) parsePair() *Pair {
	key := s.parseString()
	if s.failed() {
		return nil
	}
	s.skipSpace()
	if !s.match(':') {
		s.fail(ErrPairSeparator)
		return nil
	}
	v := s.parseValue()
	if s.failed() {
		return nil
	}
	return &Pair{Key: key, Value: v}
}

// parseArray consumes an array of zero or more comma-separated values.  In
// case of error, any values already parsed are released and nil is returned.
func (s *scanner) parseArray() *Array {
	buf := newBuffer[Value](s.limit)
	s.skipSpace()
	if !s.match('[') {
		s.fail(ErrArrayOpen)
		return nil
	}
	s.skipSpace()

	if s.ch != ']' && s.ch != eof {
		for {
			if !buf.reserve() {
				s.fail(ErrMemory)
				return freeValues(buf)
			}
			v := s.parseValue()
			if s.failed() {
				return freeValues(buf)
			}
			buf.push(v)

			// Stop if no further value is announced.
			s.skipSpace()
			if !s.match(',') {
				break
			}
		}
	}

	if !s.match(']') {
		s.fail(ErrArrayClose)
		return freeValues(buf)
	}
	return &Array{Values: buf.take()}
}

// parseObject consumes an object of zero or more comma-separated pairs.  In
// case of error, any pairs already parsed are released and nil is returned.
func (s *scanner) parseObject() *Object {
	buf := newBuffer[*Pair](s.limit)
	s.skipSpace()
	if !s.match('{') {
		s.fail(ErrObjectOpen)
		return nil
	}
	s.skipSpace()

	if s.ch != '}' && s.ch != eof {
		for {
			if !buf.reserve() {
				s.fail(ErrMemory)
				return freePairs(buf)
			}
			p := s.parsePair()
			if s.failed() {
				return freePairs(buf)
			}
			buf.push(p)

			// Stop if no further pair is announced.
			s.skipSpace()
			if !s.match(',') {
				break
			}
		}
	}

	if !s.match('}') {
		s.fail(ErrObjectClose)
		return freePairs(buf)
	}
	return &Object{Pairs: buf.take()}
}

func freeValues(buf *buffer[Value]) *Array {
	Free(&Array{Values: buf.take()})
	return nil
}

func freePairs(buf *buffer[*Pair]) *Object {
	Free(&Object{Pairs: buf.take()})
	return nil
}
