// Package mterrors provides structured error types for mongotype.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - DecodeError: BSON or extended JSON decoding failures
//   - MalformedNodeError: a tree node's declared kind disagrees with its shape
//   - StackUnderflowError: a traversal context lookup that does not exist
//   - ConfigError: invalid configuration or input options
//   - ConnectionError: unreachable deployments and failing cursors
//
// MalformedNodeError and StackUnderflowError indicate programmer errors:
// they abort the current traversal and are never retried.
package mterrors
