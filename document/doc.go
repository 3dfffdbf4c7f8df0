// Package document defines the in-memory document tree that mongotype
// traverses and renders.
//
// A tree is built from BSON: either raw document bytes (as returned by a
// MongoDB cursor), a bson.D value, or extended JSON text. Nodes come in
// exactly three kinds:
//
//   - Object: a mapping with named children; field order is the order
//     stored in the source document and is never re-sorted
//   - Array: an ordered sequence of positional children
//   - Scalar: a terminal bson.RawValue carrying its BSON type tag
//
// Node is a closed tagged variant: accessing a node as a kind it does not
// have fails with *mterrors.MalformedNodeError rather than returning
// garbage. Trees are immutable once built and exclusively own their data
// for the duration of a traversal.
package document
