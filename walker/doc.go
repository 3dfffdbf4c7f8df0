// Package walker implements the depth-first traversal engine for document
// trees and the context stack renderers use to answer positional questions.
//
// A Traverser tears apart a document tree and drives a Visitor through a
// fixed event protocol: OnTraverseStart, then strictly nested
// OnObjectStart/OnObjectEnd, OnArrayStart/OnArrayEnd and OnElement events
// in stored order, then OnTraverseEnd. At every structural event the
// visitor receives a read-only view of the Context, whose top entry
// describes the node just entered and whose history answers questions like
// "is my enclosing collection an array?" via Item(-2).
//
// The traverser owns no output logic; renderers in the render package are
// the Visitor implementations that turn events into text.
//
// # Quick Start
//
// Render a tree to stdout:
//
//	root, _ := document.FromExtJSON(data)
//	r, _ := render.New(render.StyleTree, os.Stdout)
//	if err := walker.Walk(root, r); err != nil {
//	    log.Fatal(err)
//	}
//
// # Guarantees
//
// Every start event has a matching end event, events nest strictly LIFO
// with the context stack, the stack depth equals the current nesting depth
// at all times, and the stack is empty again when Parse returns. Traversal
// visits siblings in the order the document stores them; nothing is sorted.
package walker
