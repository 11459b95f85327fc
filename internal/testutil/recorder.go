// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/internal/escape"
	"github.com/google/go-cmp/cmp"
)

// A Recorder is a jstream.Listener that records a line of text for each event
// it receives.
//
// If StopAfter is non-empty, the recorder stops its parser right after it
// records an event whose text equals StopAfter. This requires the recorder
// to have been attached to its parser via SetParser.
type Recorder struct {
	StopAfter string

	buf    bytes.Buffer
	parser *jstream.Parser
}

// Output returns the recorded events, one per line.
func (r *Recorder) Output() string { return r.buf.String() }

// Events returns the recorded events as a slice.
func (r *Recorder) Events() []string {
	s := strings.TrimSuffix(r.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (r *Recorder) pr(msg string, args ...any) error {
	text := fmt.Sprintf(msg, args...)
	r.buf.WriteString(text)
	r.buf.WriteByte('\n')
	if r.StopAfter != "" && text == r.StopAfter && r.parser != nil {
		r.parser.Stop()
	}
	return nil
}

// SetParser implements the jstream.ParserAware interface.
func (r *Recorder) SetParser(p *jstream.Parser) { r.parser = p }

func (r *Recorder) StartDocument() error { return r.pr("StartDocument") }
func (r *Recorder) EndDocument() error   { return r.pr("EndDocument") }
func (r *Recorder) StartObject() error   { return r.pr("StartObject") }
func (r *Recorder) EndObject() error     { return r.pr("EndObject") }
func (r *Recorder) StartArray() error    { return r.pr("StartArray") }
func (r *Recorder) EndArray() error      { return r.pr("EndArray") }
func (r *Recorder) Key(key string) error { return r.pr("Key %s", escape.Quote(key)) }
func (r *Recorder) Whitespace(ws string) { r.pr("Whitespace %s", escape.Quote(ws)) }

func (r *Recorder) Value(v any) error {
	switch t := v.(type) {
	case string:
		return r.pr("Value string %s", escape.Quote(t))
	case nil:
		return r.pr("Value null")
	default:
		return r.pr("Value %T %v", v, v)
	}
}

// DiffStrings reports the differences between the non-empty lines of want
// and got, or "" if they are equal.
func DiffStrings(want, got string) string {
	return cmp.Diff(splitLines(want), splitLines(got))
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
