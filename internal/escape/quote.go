// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

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

// AppendQuoted appends the JSON string encoding of src to buf, including the
// enclosing double quotation marks, and returns the extended slice.
func AppendQuoted(buf []byte, src mem.RO) []byte {
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r == 0x7f:
			buf = append(buf, `\u007f`...)
		case r < utf8.RuneSelf:
			buf = append(buf, byte(r))
		case r == '\u2028':
			buf = append(buf, `\u2028`...)
		case r == '\u2029':
			buf = append(buf, `\u2029`...)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}

// Quote returns the JSON string encoding of s.
func Quote(s string) string { return string(AppendQuoted(nil, mem.S(s))) }
