package walker

import (
	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/mterrors"
)

// Scope describes one entry on the traversal context stack: the path step
// from a parent collection to the node currently being visited.
type Scope struct {
	// Kind is the kind of the node this scope describes.
	Kind document.Kind

	// Node is the tree node this scope describes. The scope references the
	// node; it never copies its data.
	Node *document.Node

	// Key is the field name under which this node is reached from its
	// parent Object, or empty for the tree root and for array elements.
	Key string

	// SiblingIndex is this node's zero-based position among its parent's
	// children; SiblingCount is the total child count. The root is 0 of 1.
	SiblingIndex int
	SiblingCount int

	// ArrayIndex and ArrayCount are the position and length within the
	// nearest enclosing Array, or (-1, 0) when no ancestor chain member up
	// to that array exists. Children of an Object inherit the Object's
	// values; children of an Array get their own position.
	ArrayIndex int
	ArrayCount int
}

// Context is the LIFO record of ancestry from the tree root down to the
// node currently being visited. Only the traverser pushes and pops;
// visitors read it via Depth, Top and Item.
type Context struct {
	scopes []Scope
}

// Depth returns the number of entries on the stack, which is always the
// current nesting depth during a traversal.
func (c *Context) Depth() int {
	return len(c.scopes)
}

// Top returns the most recently pushed scope: the node whose event is
// currently firing. It fails with a *mterrors.StackUnderflowError when the
// stack is empty.
func (c *Context) Top() (Scope, error) {
	if len(c.scopes) == 0 {
		return Scope{}, &mterrors.StackUnderflowError{Index: -1, Depth: 0, Op: "top"}
	}
	return c.scopes[len(c.scopes)-1], nil
}

// Item returns the scope at index. Non-negative indexes count from the
// bottom of the stack (0 is the root scope); negative indexes count from
// the top (-1 is the top, -2 the enclosing collection, and so on).
// Out-of-range lookups fail with a *mterrors.StackUnderflowError; the
// stack never silently clamps.
func (c *Context) Item(index int) (Scope, error) {
	i := index
	if i < 0 {
		i += len(c.scopes)
	}
	if i < 0 || i >= len(c.scopes) {
		return Scope{}, &mterrors.StackUnderflowError{Index: index, Depth: len(c.scopes), Op: "item"}
	}
	return c.scopes[i], nil
}

// push appends a scope. Unexported: only the traverser mutates the stack.
func (c *Context) push(s Scope) {
	c.scopes = append(c.scopes, s)
}

// pop removes and returns the top scope.
func (c *Context) pop() (Scope, error) {
	if len(c.scopes) == 0 {
		return Scope{}, &mterrors.StackUnderflowError{Index: -1, Depth: 0, Op: "pop"}
	}
	top := c.scopes[len(c.scopes)-1]
	c.scopes = c.scopes[:len(c.scopes)-1]
	return top, nil
}

// reset empties the stack for a fresh Parse while keeping its capacity.
func (c *Context) reset() {
	c.scopes = c.scopes[:0]
}
