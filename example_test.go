// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/creachadair/jstream"
)

// keyFinder reports the value of the first member with a given key, and stops
// the parser once it has been found.
type keyFinder struct {
	jstream.IdleListener

	key    string
	found  bool
	parser *jstream.Parser
}

func (k *keyFinder) SetParser(p *jstream.Parser) { k.parser = p }

func (k *keyFinder) Key(key string) error {
	k.found = key == k.key
	return nil
}

func (k *keyFinder) Value(v any) error {
	if k.found {
		fmt.Printf("%s: %v (%T)\n", k.key, v, v)
		k.parser.Stop()
	}
	return nil
}

func Example() {
	const input = `{"name": "widget", "count": 25, "price": 1.5, "trailing garbage`

	p, err := jstream.NewParser(strings.NewReader(input), &keyFinder{key: "count"}, nil)
	if err != nil {
		log.Fatalf("NewParser: %v", err)
	}
	if err := p.Parse(); err != nil {
		log.Fatalf("Parse: %v", err)
	}
	fmt.Println("stopped:", p.Stopped())
	// Output:
	// count: 25 (int64)
	// stopped: true
}

func ExampleSyntaxError() {
	p, err := jstream.NewParser(strings.NewReader("[\n  1,\n  2 3\n]"), jstream.IdleListener{}, nil)
	if err != nil {
		log.Fatalf("NewParser: %v", err)
	}
	err = p.Parse()
	if serr, ok := err.(*jstream.SyntaxError); ok {
		fmt.Println("line:", serr.Pos.Line)
		fmt.Println("char:", serr.Pos.Char)
		fmt.Println(serr.Message)
	}
	// Output:
	// line: 3
	// char: 5
	// expected ',' or ']' while parsing array, got '3'
}
