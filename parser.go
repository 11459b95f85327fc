// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// DefaultBufferSize is the size of the reads Parse makes from its input when
// Options.BufferSize is not set.
const DefaultBufferSize = 8192

// Options are optional settings for a Parser. A nil *Options is ready for use
// and provides default values as described.
type Options struct {
	// LineEnding is the marker that ends a line for the purpose of reporting
	// positions. It does not affect the grammar. Default: "\n".
	LineEnding string

	// EmitWhitespace, if true, causes insignificant whitespace to be reported
	// to the Whitespace method of the listener.
	EmitWhitespace bool

	// AllowTrailingCommas, if true, permits a comma after the last member of
	// an object or the last element of an array.
	AllowTrailingCommas bool

	// BufferSize is the size of each read Parse makes from its input.
	// It has no effect on the events delivered. Default: DefaultBufferSize.
	BufferSize int

	// Logger receives diagnostic messages. If nil, nothing is logged.
	Logger hclog.Logger
}

func (o *Options) lineEnding() string {
	if o == nil || o.LineEnding == "" {
		return "\n"
	}
	return o.LineEnding
}

func (o *Options) emitWhitespace() bool { return o != nil && o.EmitWhitespace }

func (o *Options) trailingCommas() bool { return o != nil && o.AllowTrailingCommas }

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

func (o *Options) logger() hclog.Logger {
	if o == nil || o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// A Parser is an incremental JSON parser that consumes its input one byte at
// a time and reports the structure of the document to a Listener, without
// retaining the document itself.
//
// A Parser is not safe for concurrent use. Listener methods may call Stop on
// the parser that invoked them.
type Parser struct {
	src io.Reader
	lst Listener
	pl  PositionListener // nil if lst does not implement it
	log hclog.Logger

	emitWS  bool
	tcomma  bool
	bufSize int

	state State
	stack frameStack
	buf   []byte // text of the current token
	comma bool   // the last structural token was ","

	high rune // pending high surrogate, or -1

	hex  [4]byte // digits of the current \u escape
	nhex int
	gap  [2]byte // text seen after a high surrogate
	ngap int

	bom   bomSkipper
	lines lineTracker

	stopped bool
	err     error // sticky
}

// NewParser constructs a parser that reads its input from r and delivers
// events to l. If l implements ParserAware, its SetParser method is called
// with the new parser before NewParser returns.
func NewParser(r io.Reader, l Listener, opts *Options) (*Parser, error) {
	if r == nil {
		return nil, &ConfigError{Err: ErrNoSource}
	}
	return newParser(r, l, opts)
}

// NewPushParser constructs a parser that has no input source of its own.
// Input is delivered by calling Write, and the end of input is signalled by
// calling Close.
func NewPushParser(l Listener, opts *Options) (*Parser, error) {
	return newParser(nil, l, opts)
}

func newParser(r io.Reader, l Listener, opts *Options) (*Parser, error) {
	if l == nil {
		return nil, &ConfigError{Err: ErrNoListener}
	}
	p := &Parser{
		src:     r,
		lst:     l,
		log:     opts.logger(),
		emitWS:  opts.emitWhitespace(),
		tcomma:  opts.trailingCommas(),
		bufSize: opts.bufferSize(),
		state:   StateStart,
		high:    -1,
		lines:   newLineTracker(opts.lineEnding()),
	}
	p.pl, _ = l.(PositionListener)
	if pa, ok := l.(ParserAware); ok {
		pa.SetParser(p)
	}
	return p, nil
}

// Stop requests that p stop parsing. Once stopped, p consumes no further
// input, and Parse, Write, and Close report success without delivering any
// further events. Stop is typically called by a listener that has seen all
// the data it needs.
func (p *Parser) Stop() { p.stopped = true }

// Stopped reports whether Stop has been called.
func (p *Parser) Stopped() bool { return p.stopped }

// State reports the current state of p.
func (p *Parser) State() State { return p.state }

// Position reports the position of the next input character.
func (p *Parser) Position() Position { return p.lines.pos }

// Parse reads the input of p until it is exhausted, parsing is stopped, or an
// error occurs. In case of a syntax error the returned error has concrete
// type [*SyntaxError]. If a listener method reports an error, Parse returns
// that error.
func (p *Parser) Parse() error {
	if p.src == nil {
		return &ConfigError{Err: ErrNoSource}
	} else if p.err != nil {
		return p.err
	}
	p.log.Debug("parse started", "buffer_size", p.bufSize)

	buf := make([]byte, p.bufSize)
	for !p.stopped {
		nr, err := p.src.Read(buf)
		if nr > 0 {
			if _, werr := p.Write(buf[:nr]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			p.err = fmt.Errorf("read input: %w", err)
			p.log.Debug("read error", "error", err)
			return p.err
		}
	}
	if err := p.Close(); err != nil {
		return err
	}
	p.log.Debug("parse finished", "state", p.state, "pos", p.lines.pos.String())
	return nil
}

// Write delivers the next chunk of input to p. Tokens may span chunk
// boundaries. Once p has been stopped, Write discards its input and reports
// success. After an error, Write reports the same error on every call.
func (p *Parser) Write(data []byte) (nw int, err error) {
	if p.err != nil {
		return 0, p.err
	} else if p.stopped {
		return len(data), nil
	}
	defer p.recoverParseError(&err)

	for _, b := range data {
		p.consume(b)
		if p.stopped {
			p.log.Trace("parse stopped", "state", p.state, "pos", p.lines.pos.String())
			return len(data), nil
		}
		nw++
	}
	return nw, nil
}

// Close signals the end of input to p. It reports an error if the input
// ended before the document was complete, unless p was stopped.
func (p *Parser) Close() (err error) {
	if p.err != nil {
		return p.err
	}
	defer p.recoverParseError(&err)

	for _, b := range p.bom.flush() {
		if p.stopped {
			break
		}
		p.step(b)
	}
	if p.stopped || p.state == StateDone {
		return nil
	}
	p.fail("unexpected end of input")
	return nil
}

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *SyntaxError:
			p.log.Debug("syntax error", "pos", err.Pos.String(), "message", err.Message)
			p.err = err
		case listenerError:
			p.err = err.error
		default:
			panic(perr)
		}
		*errp = p.err
	}
}

// consume routes one input byte through the BOM skipper to the parser.
func (p *Parser) consume(b byte) {
	if p.bom.done {
		p.step(b)
		return
	}
	for _, c := range p.bom.add(b) {
		if p.stopped {
			return
		}
		p.step(c)
	}
}

// step processes a single input character and advances the position.
func (p *Parser) step(c byte) {
	if p.pl != nil {
		p.pl.FilePosition(p.lines.pos.Line, p.lines.pos.Char)
	}
	if !p.stopped {
		p.dispatch(c)
	}
	p.lines.advance(c)
}

var wsText = [...]string{' ': " ", '\t': "\t", '\n': "\n", '\r': "\r"}

// dispatch interprets c according to the current state.
func (p *Parser) dispatch(c byte) {
	if isSpace(c) && !p.state.inToken() {
		if p.emitWS {
			p.lst.Whitespace(wsText[c])
		}
		return
	}

	switch p.state {
	case StateStart:
		p.emit(p.lst.StartDocument())
		if p.stopped {
			return
		}
		switch c {
		case '[':
			p.startArray()
		case '{':
			p.startObject()
		default:
			p.fail("document must start with object or array")
		}

	case StateInArray:
		if c == ']' {
			p.checkTrailingComma(c)
			p.endArray()
		} else {
			p.startValue(c)
		}

	case StateInObject:
		if c == '}' {
			p.checkTrailingComma(c)
			p.endObject()
		} else if c == '"' {
			p.startKey()
		} else {
			p.failf("start of string expected for object key, got %q", c)
		}

	case StateEndKey:
		if c != ':' {
			p.failf("expected ':' after key, got %q", c)
		}
		p.state = StateAfterKey

	case StateAfterKey:
		p.startValue(c)

	case StateInString:
		p.stringChar(c)

	case StateEscape:
		p.escapeChar(c)

	case StateUnicode:
		p.unicodeChar(c)

	case StateSurrogateGap:
		p.surrogateGapChar(c)

	case StateAfterValue:
		p.afterValue(c)

	case StateInNumber:
		p.numberChar(c)

	case StateInTrue, StateInFalse, StateInNull:
		p.keywordChar(c)

	case StateDone:
		p.fail("expected end of document")

	default:
		p.failf("internal error: reached an unknown state %d", p.state)
	}
}

// startValue begins a value whose first character is c.
func (p *Parser) startValue(c byte) {
	p.comma = false
	switch {
	case c == '[':
		p.startArray()
	case c == '{':
		p.startObject()
	case c == '"':
		p.stack.push(FrameString)
		p.state = StateInString
	case isNumStart(c):
		p.startNumber(c)
	case c == 't':
		p.startKeyword(StateInTrue, c)
	case c == 'f':
		p.startKeyword(StateInFalse, c)
	case c == 'n':
		p.startKeyword(StateInNull, c)
	default:
		p.failf("unexpected character for value: %q", c)
	}
}

func (p *Parser) startArray() {
	p.state = StateInArray
	p.stack.push(FrameArray)
	p.emit(p.lst.StartArray())
}

func (p *Parser) endArray() {
	if f, ok := p.stack.pop(); !ok || f != FrameArray {
		p.fail("unexpected end of array encountered")
	}
	p.state = StateAfterValue
	p.emit(p.lst.EndArray())
	p.checkEndDocument()
}

func (p *Parser) startObject() {
	p.state = StateInObject
	p.stack.push(FrameObject)
	p.emit(p.lst.StartObject())
}

func (p *Parser) endObject() {
	if f, ok := p.stack.pop(); !ok || f != FrameObject {
		p.fail("unexpected end of object encountered")
	}
	p.state = StateAfterValue
	p.emit(p.lst.EndObject())
	p.checkEndDocument()
}

func (p *Parser) startKey() {
	p.comma = false
	p.stack.push(FrameKey)
	p.state = StateInString
}

// checkEndDocument finishes the document if the outermost structure has just
// been closed.
func (p *Parser) checkEndDocument() {
	if p.stack.empty() && !p.stopped {
		p.state = StateDone
		p.emit(p.lst.EndDocument())
	}
}

// checkTrailingComma rejects the close bracket c directly after a comma,
// unless trailing commas are allowed.
func (p *Parser) checkTrailingComma(c byte) {
	if p.comma && !p.tcomma {
		p.failf("unexpected %q after ','", c)
	}
	p.comma = false
}

// afterValue handles c following a complete value, which must continue or
// close the enclosing structure.
func (p *Parser) afterValue(c byte) {
	within, _ := p.stack.top()
	switch within {
	case FrameObject:
		if c == '}' {
			p.endObject()
		} else if c == ',' {
			p.comma = true
			p.state = StateInObject
		} else {
			p.failf("expected ',' or '}' while parsing object, got %q", c)
		}
	case FrameArray:
		if c == ']' {
			p.endArray()
		} else if c == ',' {
			p.comma = true
			p.state = StateInArray
		} else {
			p.failf("expected ',' or ']' while parsing array, got %q", c)
		}
	default:
		p.failf("finished a literal, but unclear what state to move to; last frame: %v", within)
	}
}

// emit checks the result of a listener method.
func (p *Parser) emit(err error) {
	if err != nil {
		panic(listenerError{err})
	}
}

func (p *Parser) fail(msg string) {
	panic(&SyntaxError{Pos: p.lines.pos, Message: msg})
}

func (p *Parser) failf(msg string, args ...any) { p.fail(fmt.Sprintf(msg, args...)) }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
