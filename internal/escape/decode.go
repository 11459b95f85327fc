// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of JSON strings.
package escape

import (
	"fmt"

	"go4.org/mem"
)

var singleEsc = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unescape reports the byte denoted by the single-character escape "\c", and
// whether c is such an escape. The Unicode escape "\u" is not included.
func Unescape(c byte) (byte, bool) {
	b := singleEsc[c]
	return b, b != 0
}

// IsHexDigit reports whether c is an ASCII hexadecimal digit.
func IsHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParseHex decodes the hexadecimal digits in data as a single code unit.
func ParseHex(data mem.RO) (rune, error) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
