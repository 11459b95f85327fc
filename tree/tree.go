// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree builds in-memory JSON values from the events of a
// jstream.Parser.
package tree

import (
	"strconv"

	"github.com/creachadair/jstream/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string

	appendJSON([]byte) []byte
}

// An Object is a collection of key-value members, in input order.
type Object struct {
	Members []*Member
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o *Object) JSON() string { return string(o.appendJSON(nil)) }

func (o *Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, m := range o.Members {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = m.appendJSON(buf)
	}
	return append(buf, '}')
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders the member as "key":value. A member with no value yet renders
// its value as null.
func (m *Member) JSON() string { return string(m.appendJSON(nil)) }

func (m *Member) appendJSON(buf []byte) []byte {
	buf = escape.AppendQuoted(buf, mem.S(m.Key))
	buf = append(buf, ':')
	if m.Value == nil {
		return append(buf, "null"...)
	}
	return m.Value.appendJSON(buf)
}

// An Array is a sequence of values.
type Array []Value

func (a Array) JSON() string { return string(a.appendJSON(nil)) }

func (a Array) appendJSON(buf []byte) []byte {
	buf = append(buf, '[')
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = v.appendJSON(buf)
	}
	return append(buf, ']')
}

// A String is a decoded string value.
type String string

func (s String) JSON() string                 { return escape.Quote(string(s)) }
func (s String) appendJSON(buf []byte) []byte { return escape.AppendQuoted(buf, mem.S(string(s))) }

// An Integer is a number with no fraction or exponent that fits in an int64.
type Integer int64

func (z Integer) JSON() string                 { return strconv.FormatInt(int64(z), 10) }
func (z Integer) appendJSON(buf []byte) []byte { return strconv.AppendInt(buf, int64(z), 10) }

// A Float is any other number.
type Float float64

func (f Float) JSON() string                 { return string(f.appendJSON(nil)) }
func (f Float) appendJSON(buf []byte) []byte { return strconv.AppendFloat(buf, float64(f), 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string                 { return strconv.FormatBool(bool(b)) }
func (b Bool) appendJSON(buf []byte) []byte { return strconv.AppendBool(buf, bool(b)) }

// Null represents the null constant.
type Null struct{}

func (Null) JSON() string                 { return "null" }
func (Null) appendJSON(buf []byte) []byte { return append(buf, "null"...) }

// Interface converts v into plain Go values: map[string]any for objects,
// []any for arrays, and string, int64, float64, bool, or nil for scalars.
// If an object has duplicate keys, the last one wins.
func Interface(v Value) any {
	switch t := v.(type) {
	case *Object:
		m := make(map[string]any, len(t.Members))
		for _, member := range t.Members {
			m[member.Key] = Interface(member.Value)
		}
		return m
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Interface(elt)
		}
		return out
	case String:
		return string(t)
	case Integer:
		return int64(t)
	case Float:
		return float64(t)
	case Bool:
		return bool(t)
	default:
		return nil
	}
}
