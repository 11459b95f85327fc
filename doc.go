// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jstream implements an incremental, event-driven JSON parser.
//
// A Parser consumes its input one byte at a time and reports the structure of
// the document to a Listener as it is recognized, without ever holding the
// whole document in memory. This makes it suitable for processing documents
// of unbounded size, and for stopping early once the data of interest has
// been seen.
//
// # Parsing
//
// Construct a Parser from an io.Reader and a Listener, and call its Parse
// method. Parse returns nil if the document was fully processed or the parser
// was stopped. In case of malformed input, parsing is terminated and an error
// of concrete type *jstream.SyntaxError is returned:
//
//	p, err := jstream.NewParser(input, listener, nil)
//	if err != nil {
//	   log.Fatalf("NewParser: %v", err)
//	}
//	if err := p.Parse(); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Input may instead be pushed in chunks of any size. A token may span any
// number of chunks:
//
//	p, err := jstream.NewPushParser(listener, nil)
//	...
//	for chunk := range chunks {
//	   if _, err := p.Write(chunk); err != nil {
//	      return err
//	   }
//	}
//	return p.Close()
//
// The document must be a single object or array. A byte-order mark at the
// start of the input is discarded.
//
// # Listeners
//
// The Listener interface accepts events from a Parser. For each construct of
// the input its methods are called in this order:
//
//	JSON construct | Methods
//	-------------- | ----------------------------------------------
//	document       | StartDocument ... EndDocument
//	object         | StartObject, Key + value events ..., EndObject
//	array          | StartArray, value events ..., EndArray
//	scalar         | Value (string, int64, float64, bool, or nil)
//
// A listener that also implements PositionListener is told the position of
// each character before it is processed. A listener that implements
// ParserAware receives the Parser, and may call its Stop method from within
// any event to end parsing early; no further events are delivered after
// that, not even EndDocument.
package jstream
