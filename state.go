// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// State is the state of a Parser: it determines what the next input character
// is expected to mean.
type State byte

// Constants defining the valid State values.
const (
	StateStart        State = iota // awaiting the start of the document
	StateInArray                   // after "[" or ",", in an array
	StateInObject                  // after "{" or ",", in an object
	StateEndKey                    // after an object key, expecting ":"
	StateAfterKey                  // after ":", expecting a value
	StateInString                  // inside a quoted string or key
	StateEscape                    // after "\" in a string
	StateUnicode                   // inside a \uXXXX escape
	StateSurrogateGap              // after a high surrogate, expecting "\u"
	StateInNumber                  // inside a number
	StateInTrue                    // inside the constant true
	StateInFalse                   // inside the constant false
	StateInNull                    // inside the constant null
	StateAfterValue                // after a value, expecting "," or a close
	StateDone                      // the document is complete
)

var stateStr = [...]string{
	StateStart:        "start of document",
	StateInArray:      "in array",
	StateInObject:     "in object",
	StateEndKey:       "end of key",
	StateAfterKey:     "after key",
	StateInString:     "in string",
	StateEscape:       "start of escape",
	StateUnicode:      "in Unicode escape",
	StateSurrogateGap: "after Unicode high surrogate",
	StateInNumber:     "in number",
	StateInTrue:       "in true",
	StateInFalse:      "in false",
	StateInNull:       "in null",
	StateAfterValue:   "after value",
	StateDone:         "done",
}

func (s State) String() string {
	v := int(s)
	if v >= len(stateStr) {
		return "invalid state"
	}
	return stateStr[v]
}

// inToken reports whether s is in the middle of a token, where whitespace is
// significant and must be handled by the token's own rules.
func (s State) inToken() bool {
	switch s {
	case StateInString, StateEscape, StateUnicode, StateSurrogateGap,
		StateInNumber, StateInTrue, StateInFalse, StateInNull:
		return true
	}
	return false
}
