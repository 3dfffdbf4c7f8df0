package walker

import (
	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/mterrors"
)

// Traverser is a reusable depth-first walker over document trees. It owns
// no output logic; it drives a Visitor through the structural event
// protocol while maintaining the context stack. One Traverser may parse
// many documents in sequence; the context is reset at each Parse.
type Traverser struct {
	visitor Visitor
	ctx     Context
}

// New creates a Traverser bound to the given visitor.
func New(v Visitor) *Traverser {
	return &Traverser{visitor: v}
}

// Walk traverses one document tree with the given visitor. It is shorthand
// for New(v).Parse(root).
func Walk(root *document.Node, v Visitor) error {
	return New(v).Parse(root)
}

// Parse traverses root depth-first, emitting the full event sequence to
// the bound visitor. The root must be an Object, the conventional
// top-level shape of a document. When Parse returns the context stack is
// empty, whether traversal completed or aborted.
func (t *Traverser) Parse(root *document.Node) error {
	if root == nil {
		return &mterrors.MalformedNodeError{Expected: document.KindObject.String(), Message: "nil root"}
	}
	if root.Kind() != document.KindObject {
		return &mterrors.MalformedNodeError{Expected: document.KindObject.String(), Actual: root.Kind().String(), Message: "document root"}
	}

	t.ctx.reset()
	defer t.ctx.reset()

	if err := t.visitor.OnTraverseStart(); err != nil {
		return err
	}
	rootScope := Scope{
		Kind:         document.KindObject,
		Node:         root,
		SiblingIndex: 0,
		SiblingCount: 1,
		ArrayIndex:   -1,
		ArrayCount:   0,
	}
	if err := t.visitObject(root, rootScope); err != nil {
		return err
	}
	return t.visitor.OnTraverseEnd()
}

// visit dispatches on the node kind. The scope is pushed by the kind
// handler immediately before the node's start event and popped immediately
// after its end event, so stack depth always equals nesting depth.
func (t *Traverser) visit(n *document.Node, s Scope) error {
	switch n.Kind() {
	case document.KindObject:
		return t.visitObject(n, s)
	case document.KindArray:
		return t.visitArray(n, s)
	case document.KindScalar:
		return t.visitScalar(s)
	default:
		return &mterrors.MalformedNodeError{Actual: n.Kind().String(), Message: "unrecognized node kind"}
	}
}

func (t *Traverser) visitObject(n *document.Node, s Scope) error {
	fields, err := n.Fields()
	if err != nil {
		return err
	}

	t.ctx.push(s)
	if err := t.visitor.OnObjectStart(&t.ctx); err != nil {
		return err
	}

	count := len(fields)
	for i, f := range fields {
		child := Scope{
			Kind:         f.Value.Kind(),
			Node:         f.Value,
			Key:          f.Key,
			SiblingIndex: i,
			SiblingCount: count,
			// Object children inherit the object's own array position so
			// descendants can still locate the nearest enclosing array.
			ArrayIndex: s.ArrayIndex,
			ArrayCount: s.ArrayCount,
		}
		if err := t.visit(f.Value, child); err != nil {
			return err
		}
	}

	if err := t.visitor.OnObjectEnd(&t.ctx); err != nil {
		return err
	}
	_, err = t.ctx.pop()
	return err
}

func (t *Traverser) visitArray(n *document.Node, s Scope) error {
	elems, err := n.Elements()
	if err != nil {
		return err
	}

	t.ctx.push(s)
	if err := t.visitor.OnArrayStart(&t.ctx); err != nil {
		return err
	}

	count := len(elems)
	for i, e := range elems {
		child := Scope{
			Kind:         e.Kind(),
			Node:         e,
			SiblingIndex: i,
			SiblingCount: count,
			ArrayIndex:   i,
			ArrayCount:   count,
		}
		if err := t.visit(e, child); err != nil {
			return err
		}
	}

	if err := t.visitor.OnArrayEnd(&t.ctx); err != nil {
		return err
	}
	_, err = t.ctx.pop()
	return err
}

func (t *Traverser) visitScalar(s Scope) error {
	t.ctx.push(s)
	if err := t.visitor.OnElement(&t.ctx); err != nil {
		return err
	}
	_, err := t.ctx.pop()
	return err
}
