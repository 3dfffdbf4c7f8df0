package mterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDecode indicates a BSON or extended JSON decoding failure.
	ErrDecode = errors.New("decode error")

	// ErrMalformedNode indicates a document node whose declared kind
	// disagrees with its actual shape.
	ErrMalformedNode = errors.New("malformed node")

	// ErrStackUnderflow indicates a traversal context lookup for an entry
	// that does not exist.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrConnection indicates a failure to reach or query a MongoDB
	// deployment.
	ErrConnection = errors.New("connection error")
)

// DecodeError represents a failure to decode a document into a tree.
// This includes invalid raw BSON and malformed extended JSON input.
type DecodeError struct {
	// Source identifies the input being decoded, e.g. "raw bson" or a file path
	Source string
	// Message describes the decoding failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// MalformedNodeError represents a document tree node that was accessed as a
// kind it does not have, or a node whose structure is internally inconsistent.
// This is a programmer error and aborts the current traversal.
type MalformedNodeError struct {
	// Expected is the kind the caller asked for, e.g. "Object"
	Expected string
	// Actual is the kind the node really has
	Actual string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *MalformedNodeError) Error() string {
	msg := "malformed node"
	if e.Expected != "" || e.Actual != "" {
		msg += fmt.Sprintf(": expected %s, got %s", e.Expected, e.Actual)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as MalformedNodeError has no underlying cause.
func (e *MalformedNodeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MalformedNodeError) Is(target error) bool {
	return target == ErrMalformedNode
}

// StackUnderflowError represents a request for a traversal context entry
// that does not exist. The stack never silently clamps an out-of-range
// lookup; it fails with this error instead.
type StackUnderflowError struct {
	// Index is the requested entry index; negative indexes count from the top
	Index int
	// Depth is the stack depth at the time of the lookup
	Depth int
	// Op is the operation that failed: "top", "pop", or "item"
	Op string
}

// Error returns a human-readable error message.
func (e *StackUnderflowError) Error() string {
	msg := "stack underflow"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	msg += fmt.Sprintf(": index %d with depth %d", e.Index, e.Depth)
	return msg
}

// Unwrap returns nil as StackUnderflowError has no underlying cause.
func (e *StackUnderflowError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *StackUnderflowError) Is(target error) bool {
	return target == ErrStackUnderflow
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ConnectionError represents a failure to connect to or query a MongoDB
// deployment. Callers can distinguish it from other failures to report
// connectivity problems separately.
type ConnectionError struct {
	// URI is the connection string of the deployment, if known
	URI string
	// Message describes the failing operation, e.g. "ping" or "find"
	Message string
	// Cause is the underlying driver error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConnectionError) Error() string {
	msg := "connection error"
	if e.URI != "" {
		msg += " for " + e.URI
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}
