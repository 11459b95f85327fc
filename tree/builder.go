// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jstream"
)

// Parse parses a single JSON document from r and returns its root value.
// In case of error, the returned value is nil.
func Parse(r io.Reader, opts *jstream.Options) (Value, error) {
	b := new(Builder)
	p, err := jstream.NewParser(r, b, opts)
	if err != nil {
		return nil, err
	}
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return b.Root()
}

// A Builder implements the jstream.Listener interface to construct the value
// of a document in memory.
type Builder struct {
	jstream.IdleListener

	stk  []Value
	root Value
	done bool
}

// Root returns the root value of the completed document. It reports an error
// if the document has not been completely parsed.
func (b *Builder) Root() (Value, error) {
	if !b.done {
		return nil, errors.New("incomplete document")
	}
	return b.root, nil
}

func (b *Builder) top() Value { return b.stk[len(b.stk)-1] }

func (b *Builder) pop() Value {
	last := b.top()
	b.stk = b.stk[:len(b.stk)-1]
	return last
}

func (b *Builder) push(v Value) { b.stk = append(b.stk, v) }

// reduce adds a completed value to the structure atop the stack, or makes it
// the root if the stack is empty.
func (b *Builder) reduce(v Value) {
	if len(b.stk) == 0 {
		b.root = v
		return
	}
	switch prev := b.top().(type) {
	case *Member:
		prev.Value = v
		b.pop()
	case *Array:
		*prev = append(*prev, v)
	}
}

// StartDocument resets the state of b so that a Builder can be reused.
func (b *Builder) StartDocument() error {
	b.stk, b.root, b.done = b.stk[:0], nil, false
	return nil
}

func (b *Builder) EndDocument() error { b.done = true; return nil }

func (b *Builder) StartObject() error { b.push(new(Object)); return nil }

func (b *Builder) EndObject() error { b.reduce(b.pop()); return nil }

func (b *Builder) StartArray() error { b.push(new(Array)); return nil }

func (b *Builder) EndArray() error {
	b.reduce(*b.pop().(*Array))
	return nil
}

func (b *Builder) Key(key string) error {
	// The object this member belongs to is atop the stack. Add the member to
	// it eagerly, so that reducing the value only has to fill it in.
	obj, ok := b.top().(*Object)
	if !ok {
		return fmt.Errorf("key %q outside an object", key)
	}
	m := &Member{Key: key}
	obj.Members = append(obj.Members, m)
	b.push(m)
	return nil
}

func (b *Builder) Value(v any) error {
	switch t := v.(type) {
	case string:
		b.reduce(String(t))
	case int64:
		b.reduce(Integer(t))
	case float64:
		b.reduce(Float(t))
	case bool:
		b.reduce(Bool(t))
	case nil:
		b.reduce(Null{})
	default:
		return fmt.Errorf("unknown value type %T", v)
	}
	return nil
}
