// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// A Frame records one structure or quoted token currently open in the input.
type Frame byte

// Constants defining the valid Frame values.
const (
	FrameObject Frame = iota // an object, after "{"
	FrameArray               // an array, after "["
	FrameKey                 // a quoted object key
	FrameString              // a quoted string value
)

var frameStr = [...]string{
	FrameObject: "object",
	FrameArray:  "array",
	FrameKey:    "key",
	FrameString: "string",
}

func (f Frame) String() string {
	v := int(f)
	if v >= len(frameStr) {
		return "invalid frame"
	}
	return frameStr[v]
}

// frameStack is the nesting stack of a parser. The zero value is empty and
// ready for use.
type frameStack []Frame

func (s *frameStack) push(f Frame) { *s = append(*s, f) }

// pop removes and returns the top frame, or reports false if s is empty.
func (s *frameStack) pop() (Frame, bool) {
	n := len(*s)
	if n == 0 {
		return 0, false
	}
	f := (*s)[n-1]
	*s = (*s)[:n-1]
	return f, true
}

// top returns the top frame without removing it, or reports false if s is
// empty.
func (s frameStack) top() (Frame, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

func (s frameStack) empty() bool { return len(s) == 0 }
