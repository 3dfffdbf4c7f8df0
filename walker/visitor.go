package walker

// Visitor receives the structural events of one document traversal. Each
// method is invoked synchronously, exactly once per corresponding
// structural occurrence, in strict LIFO nesting with the context stack.
//
// The Context passed to an event describes the node the event is about via
// Top(), with full ancestry available through Item(). Visitors must treat
// the context as read-only; only the traverser pushes and pops.
//
// Returning a non-nil error from any event aborts the traversal
// immediately and the error propagates out of Parse.
type Visitor interface {
	// OnTraverseStart is invoked once per parse before all other events.
	// Renderers reset their private state here.
	OnTraverseStart() error

	// OnTraverseEnd is invoked once per parse after all other events.
	OnTraverseEnd() error

	// OnObjectStart is invoked for each Object before its fields are
	// visited. ctx.Top() is the Object's scope.
	OnObjectStart(ctx *Context) error

	// OnObjectEnd is invoked for each Object after its fields are visited,
	// while the Object's scope is still on the stack.
	OnObjectEnd(ctx *Context) error

	// OnArrayStart is invoked for each Array before its elements are
	// visited. ctx.Top() is the Array's scope.
	OnArrayStart(ctx *Context) error

	// OnArrayEnd is invoked for each Array after its elements are visited,
	// while the Array's scope is still on the stack.
	OnArrayEnd(ctx *Context) error

	// OnElement is invoked once for each terminal Scalar. ctx.Top().Node
	// carries the scalar value.
	OnElement(ctx *Context) error
}
