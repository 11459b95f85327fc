// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import "bytes"

// Byte-order marks recognized at the start of the input. Where one mark is a
// prefix of another (UTF-16LE and UTF-32LE), the longer one wins.
var byteOrderMarks = [...][]byte{
	{0xEF, 0xBB, 0xBF},       // UTF-8
	{0xFE, 0xFF},             // UTF-16BE
	{0xFF, 0xFE},             // UTF-16LE
	{0x00, 0x00, 0xFE, 0xFF}, // UTF-32BE
	{0xFF, 0xFE, 0x00, 0x00}, // UTF-32LE
}

// A bomSkipper buffers the leading bytes of the input until it can decide
// whether they begin with a byte-order mark. Once decided, it never triggers
// again.
type bomSkipper struct {
	buf  [4]byte
	n    int
	done bool
}

// add offers the next leading byte of the input. It returns the bytes that
// should be passed on to the parser, which is empty while the decision is
// still pending. The returned slice is valid until the next call.
func (s *bomSkipper) add(b byte) []byte {
	s.buf[s.n] = b
	s.n++
	seen := s.buf[:s.n]
	for _, bom := range byteOrderMarks {
		if len(bom) > len(seen) && bytes.HasPrefix(bom, seen) {
			return nil // a longer mark could still match
		}
	}
	return s.resolve()
}

// flush resolves a pending decision at the end of the input.
func (s *bomSkipper) flush() []byte {
	if s.done {
		return nil
	}
	return s.resolve()
}

// resolve discards the longest mark that prefixes the buffered bytes, and
// returns the remainder.
func (s *bomSkipper) resolve() []byte {
	s.done = true
	seen := s.buf[:s.n]
	var skip int
	for _, bom := range byteOrderMarks {
		if len(bom) > skip && bytes.HasPrefix(seen, bom) {
			skip = len(bom)
		}
	}
	return seen[skip:]
}
