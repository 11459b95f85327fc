// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/jstream/internal/escape"
	"go4.org/mem"
)

// stringChar handles c inside a quoted string or key.
func (p *Parser) stringChar(c byte) {
	switch {
	case c == '"':
		p.endString()
	case c == '\\':
		p.state = StateEscape
	case c < 0x20 || c == 0x7f:
		p.failf("unescaped control character encountered: %q", c)
	default:
		p.buf = append(p.buf, c)
	}
}

// endString completes the current string, which is either an object key or a
// string value depending on the frame that opened it.
func (p *Parser) endString() {
	f, _ := p.stack.pop()
	text := string(p.buf)
	p.buf = p.buf[:0]
	switch f {
	case FrameKey:
		p.state = StateEndKey
		p.emit(p.lst.Key(text))
	case FrameString:
		p.state = StateAfterValue
		p.emit(p.lst.Value(text))
	default:
		p.fail("unexpected end of string")
	}
}

// escapeChar handles the character after a backslash.
func (p *Parser) escapeChar(c byte) {
	if c == 'u' {
		p.nhex = 0
		p.state = StateUnicode
		return
	}
	b, ok := escape.Unescape(c)
	if !ok {
		p.failf("expected escaped character after backslash, got %q", c)
	}
	p.buf = append(p.buf, b)
	p.state = StateInString
}

// unicodeChar accumulates the hex digits of a \uXXXX escape. A high surrogate
// must be followed directly by a second escape holding its low surrogate.
func (p *Parser) unicodeChar(c byte) {
	if !escape.IsHexDigit(c) {
		p.failf("expected hex character for escaped Unicode character, got %q after %q", c, p.hex[:p.nhex])
	}
	p.hex[p.nhex] = c
	p.nhex++
	if p.nhex < len(p.hex) {
		return
	}
	p.nhex = 0
	cp, err := escape.ParseHex(mem.B(p.hex[:]))
	if err != nil {
		p.failf("invalid Unicode escape: %v", err)
	}

	switch {
	case isHighSurrogate(cp):
		if p.high >= 0 {
			p.fail("invalid low surrogate following Unicode high surrogate")
		}
		p.high = cp
		p.ngap = 0
		p.state = StateSurrogateGap

	case isLowSurrogate(cp):
		if p.high < 0 {
			p.fail("missing high surrogate for Unicode low surrogate")
		}
		p.endUnicode(utf16.DecodeRune(p.high, cp))

	default:
		if p.high >= 0 {
			p.fail("invalid low surrogate following Unicode high surrogate")
		}
		p.endUnicode(cp)
	}
}

// surrogateGapChar checks for the "\u" that must separate the two halves of a
// surrogate pair.
func (p *Parser) surrogateGapChar(c byte) {
	p.gap[p.ngap] = c
	p.ngap++
	if p.ngap < len(p.gap) {
		return
	}
	if p.gap != [2]byte{'\\', 'u'} {
		p.failf("expected '\\u' following a Unicode high surrogate, got %q", p.gap[:])
	}
	p.ngap = 0
	p.state = StateUnicode
}

func (p *Parser) endUnicode(r rune) {
	p.buf = utf8.AppendRune(p.buf, r)
	p.high = -1
	p.state = StateInString
}

func isHighSurrogate(r rune) bool { return 0xD800 <= r && r < 0xDC00 }
func isLowSurrogate(r rune) bool  { return 0xDC00 <= r && r < 0xE000 }
