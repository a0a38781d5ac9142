// Copyright (C) 2025 hashdiese. All Rights Reserved.

// Package escape encodes string content for inclusion in rendered JSON.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Append appends the JSON escaping of src to dst and returns the result.
// Control characters, quotation marks, and backslashes are escaped; all
// other Unicode passes through unescaped. The enclosing quotation marks are
// the caller's concern.
func Append(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r >= utf8.RuneSelf {
			var rbuf [6]byte
			k := utf8.EncodeRune(rbuf[:], r)
			dst = append(dst, rbuf[:k]...)
			continue
		}
		if r < ' ' {
			if b := controlEsc[r]; b != 0 {
				dst = append(dst, '\\', b)
			} else {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
			}
		} else if r == '\\' || r == '"' {
			dst = append(dst, '\\', byte(r))
		} else {
			dst = append(dst, byte(r))
		}
	}
	return dst
}
