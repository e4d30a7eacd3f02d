// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of string contents for JSON output.
//
// The escapes produced are exactly those the parser decodes: \" for a
// quotation mark, \\ for a backslash, and \n for a newline. All other runes,
// including other control characters, are copied unchanged.
package escape

import (
	"go4.org/mem"
)

var quoteEsc = [...]byte{
	'\n': 'n',
	'"':  '"',
	'\\': '\\',
}

// Quote encodes src for inclusion in a JSON string. Enclosing quotation marks
// are not added.
func Quote(src mem.RO) []byte {
	i := indexEscape(src)
	if i < 0 {
		return mem.Append(nil, src)
	}

	buf := make([]byte, 0, src.Len()+8)
	for i >= 0 {
		buf = mem.Append(buf, src.SliceTo(i))
		buf = append(buf, '\\', quoteEsc[src.At(i)])
		src = src.SliceFrom(i + 1)
		i = indexEscape(src)
	}
	return mem.Append(buf, src)
}

// indexEscape returns the offset of the first byte of src that requires an
// escape, or -1. Escaped bytes are all ASCII, so they cannot occur inside a
// multi-byte UTF-8 sequence.
func indexEscape(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); int(b) < len(quoteEsc) && quoteEsc[b] != 0 {
			return i
		}
	}
	return -1
}
