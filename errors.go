// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource is reported when a parser is constructed without an input.
	ErrNoSource = errors.New("invalid stream provided")

	// ErrNoListener is reported when a parser is constructed without a
	// listener.
	ErrNoListener = errors.New("listener must implement jstream.Listener")
)

// ConfigError is the concrete type of errors reported when a Parser cannot be
// constructed from the arguments given.
type ConfigError struct {
	Err error
}

// Error satisfies the error interface.
func (c *ConfigError) Error() string { return "invalid configuration: " + c.Err.Error() }

// Unwrap supports error wrapping.
func (c *ConfigError) Unwrap() error { return c.Err }

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Pos     Position // the location of the offending character
	Message string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Pos, s.Message)
}

// listenerError marks an error reported by a Listener method, so that it can
// be returned to the caller unchanged.
type listenerError struct{ error }

func (l listenerError) Unwrap() error { return l.error }
