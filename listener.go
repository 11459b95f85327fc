// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// A Listener receives events from a Parser as the structure of the input is
// recognized. Events are delivered synchronously, in input order.
//
// If a method other than Whitespace reports an error, parsing stops and that
// error is returned to the caller of Parse or Write.
//
// Scalar values are passed to Value as one of string, int64, float64, bool,
// or nil (for null).
type Listener interface {
	// StartDocument is called once, when the first character of the
	// document is seen.
	StartDocument() error

	// EndDocument is called once, after the outermost object or array closes.
	EndDocument() error

	StartObject() error
	EndObject() error
	StartArray() error
	EndArray() error

	// Key reports the decoded text of an object key. The value of the member
	// follows as the next value event.
	Key(key string) error

	// Value reports a scalar value.
	Value(value any) error

	// Whitespace reports insignificant whitespace between tokens. It is only
	// called when the parser is configured to emit whitespace.
	Whitespace(ws string)
}

// PositionListener is an optional interface that a Listener may implement to
// be told the position of each input character before it is processed.
type PositionListener interface {
	FilePosition(line, char int)
}

// ParserAware is an optional interface that a Listener may implement to
// receive the parser it is attached to, for example to call its Stop method
// once it has seen enough of the input.
type ParserAware interface {
	SetParser(p *Parser)
}

// IdleListener is a Listener that ignores all events. It may be embedded in
// a listener type to supply the methods it does not care about.
type IdleListener struct{}

func (IdleListener) StartDocument() error { return nil }
func (IdleListener) EndDocument() error   { return nil }
func (IdleListener) StartObject() error   { return nil }
func (IdleListener) EndObject() error     { return nil }
func (IdleListener) StartArray() error    { return nil }
func (IdleListener) EndArray() error      { return nil }
func (IdleListener) Key(string) error     { return nil }
func (IdleListener) Value(any) error      { return nil }
func (IdleListener) Whitespace(string)    {}
