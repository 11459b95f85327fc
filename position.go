// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import "fmt"

// A Position describes the line number and character offset of a location in
// the input.
type Position struct {
	Line int // line number, 1-based
	Char int // byte offset of the character in its line, 1-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Char) }

// A lineTracker maintains the position of the next input byte. A line ends
// after each complete occurrence of the eol marker.
type lineTracker struct {
	pos   Position
	eol   []byte
	match int // number of bytes of eol matched so far
}

func newLineTracker(eol string) lineTracker {
	return lineTracker{pos: Position{Line: 1, Char: 1}, eol: []byte(eol)}
}

// advance records that b has been consumed.
func (t *lineTracker) advance(b byte) {
	t.pos.Char++
	if len(t.eol) == 0 {
		return
	}
	if b == t.eol[t.match] {
		t.match++
	} else if b == t.eol[0] {
		t.match = 1
	} else {
		t.match = 0
	}
	if t.match == len(t.eol) {
		t.pos.Line++
		t.pos.Char = 1
		t.match = 0
	}
}
