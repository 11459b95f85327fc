// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"bytes"
	"errors"
	"strconv"

	"go4.org/mem"
)

// Spellings and values of the keyword constants, indexed by the state that
// lexes them.
var keywords = map[State]struct {
	word  mem.RO
	value any
}{
	StateInTrue:  {mem.S("true"), true},
	StateInFalse: {mem.S("false"), false},
	StateInNull:  {mem.S("null"), nil},
}

func (p *Parser) startKeyword(state State, c byte) {
	p.state = state
	p.buf = append(p.buf[:0], c)
}

// keywordChar accumulates c into the current keyword. Once the keyword has
// its full length, the text must match the expected spelling.
func (p *Parser) keywordChar(c byte) {
	p.buf = append(p.buf, c)
	kw := keywords[p.state]
	if len(p.buf) < kw.word.Len() {
		return
	}
	if got := mem.B(p.buf); !got.Equal(kw.word) {
		p.failf("expected '%s', got %q", kw.word.StringCopy(), got.StringCopy())
	}
	p.buf = p.buf[:0]
	p.state = StateAfterValue
	p.emit(p.lst.Value(kw.value))
}

func (p *Parser) startNumber(c byte) {
	p.state = StateInNumber
	p.buf = append(p.buf[:0], c)
}

// numberChar accumulates c into the current number, or ends the number and
// reprocesses c if it cannot be part of one.
func (p *Parser) numberChar(c byte) {
	switch {
	case isDigit(c):
	case c == '.':
		if bytes.IndexByte(p.buf, '.') >= 0 {
			p.fail("cannot have multiple decimal points in a number")
		} else if hasExponent(p.buf) {
			p.fail("cannot have a decimal point in an exponent")
		}
	case c == 'e' || c == 'E':
		if hasExponent(p.buf) {
			p.fail("cannot have multiple exponents in a number")
		}
	case c == '+' || c == '-':
		if last := p.buf[len(p.buf)-1]; last != 'e' && last != 'E' {
			p.fail("can only have '+' or '-' after the 'e' or 'E' in a number")
		}
	default:
		p.endNumber()
		if !p.stopped {
			p.dispatch(c) // c follows the number
		}
		return
	}
	p.buf = append(p.buf, c)
}

func (p *Parser) endNumber() {
	v, err := parseNumber(p.buf)
	if err != nil {
		p.failf("%v: %q", err, p.buf)
	}
	p.buf = p.buf[:0]
	p.state = StateAfterValue
	p.emit(p.lst.Value(v))
}

var (
	errNoDigits    = errors.New("invalid number")
	errLeadingZero = errors.New("extra leading zeroes in number")
	errNoFraction  = errors.New("no digits after decimal point in number")
	errNoExponent  = errors.New("missing exponent digits in number")
	errRange       = errors.New("number out of range")
)

// parseNumber converts the complete text of a number. The result is an int64
// if the text has no fraction or exponent and fits; otherwise a float64.
// The text "-0" yields a float64 so that its sign is kept.
func parseNumber(text []byte) (any, error) {
	if err := checkNumber(text); err != nil {
		return nil, err
	}
	s := string(text)
	if bytes.IndexAny(text, ".eE") < 0 {
		if z, err := strconv.ParseInt(s, 10, 64); err == nil && (z != 0 || text[0] != '-') {
			return z, nil
		}
		// An integer too large for int64, or negative zero, falls back to
		// floating point.
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errRange
	}
	return f, nil
}

// checkNumber reports whether text satisfies the JSON number grammar. The
// placement of signs, decimal points, and exponents has already been checked
// as the text was accumulated.
func checkNumber(text []byte) error {
	if text[0] == '-' {
		text = text[1:] // skip leading sign
	}
	n := digitsPrefix(text)
	if n == 0 {
		return errNoDigits
	} else if n > 1 && text[0] == '0' {
		return errLeadingZero
	}
	text = text[n:]
	if len(text) != 0 && text[0] == '.' {
		n = digitsPrefix(text[1:])
		if n == 0 {
			return errNoFraction
		}
		text = text[1+n:]
	}
	if len(text) != 0 { // exponent
		text = text[1:]
		if len(text) != 0 && (text[0] == '+' || text[0] == '-') {
			text = text[1:]
		}
		if len(text) == 0 {
			return errNoExponent
		}
	}
	return nil
}

// digitsPrefix returns the length of the longest prefix of text made of
// decimal digits.
func digitsPrefix(text []byte) int {
	for i, c := range text {
		if !isDigit(c) {
			return i
		}
	}
	return len(text)
}

func hasExponent(text []byte) bool { return bytes.IndexAny(text, "eE") >= 0 }

func isNumStart(c byte) bool { return c == '-' || isDigit(c) }
func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
