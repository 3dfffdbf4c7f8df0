package walker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/mterrors"
)

// spyVisitor records the event sequence and the stack depth observed at
// each event.
type spyVisitor struct {
	events []string
	depths []int

	objectStarts, objectEnds int
	arrayStarts, arrayEnds   int
	elements                 int

	failOn string
}

func (s *spyVisitor) record(ctx *Context, event string) error {
	s.events = append(s.events, event)
	if ctx != nil {
		s.depths = append(s.depths, ctx.Depth())
	} else {
		s.depths = append(s.depths, 0)
	}
	if event == s.failOn {
		return fmt.Errorf("injected failure at %s", event)
	}
	return nil
}

func (s *spyVisitor) OnTraverseStart() error { return s.record(nil, "traverseStart") }
func (s *spyVisitor) OnTraverseEnd() error   { return s.record(nil, "traverseEnd") }

func (s *spyVisitor) OnObjectStart(ctx *Context) error {
	s.objectStarts++
	return s.record(ctx, "objectStart")
}

func (s *spyVisitor) OnObjectEnd(ctx *Context) error {
	s.objectEnds++
	return s.record(ctx, "objectEnd")
}

func (s *spyVisitor) OnArrayStart(ctx *Context) error {
	s.arrayStarts++
	return s.record(ctx, "arrayStart")
}

func (s *spyVisitor) OnArrayEnd(ctx *Context) error {
	s.arrayEnds++
	return s.record(ctx, "arrayEnd")
}

func (s *spyVisitor) OnElement(ctx *Context) error {
	s.elements++
	return s.record(ctx, "element")
}

func mustTree(t *testing.T, d bson.D) *document.Node {
	t.Helper()
	root, err := document.FromD(d)
	require.NoError(t, err)
	return root
}

func TestWalkEventSequence(t *testing.T) {
	root := mustTree(t, bson.D{
		{Key: "a", Value: int32(1)},
		{Key: "b", Value: bson.D{{Key: "c", Value: "x"}}},
		{Key: "d", Value: bson.A{int32(2), int32(3)}},
	})

	spy := &spyVisitor{}
	tr := New(spy)
	require.NoError(t, tr.Parse(root))

	want := []string{
		"traverseStart",
		"objectStart", // root
		"element",     // a
		"objectStart", // b
		"element",     // b.c
		"objectEnd",
		"arrayStart", // d
		"element",    // d[0]
		"element",    // d[1]
		"arrayEnd",
		"objectEnd",
		"traverseEnd",
	}
	assert.Equal(t, want, spy.events)
	assert.Equal(t, 0, tr.ctx.Depth(), "stack must be empty after Parse")
}

func TestWalkBalancedEvents(t *testing.T) {
	root := mustTree(t, bson.D{
		{Key: "nested", Value: bson.D{
			{Key: "arr", Value: bson.A{
				bson.D{{Key: "x", Value: int32(1)}},
				bson.A{int32(2)},
			}},
		}},
	})

	spy := &spyVisitor{}
	require.NoError(t, Walk(root, spy))

	assert.Equal(t, spy.objectStarts, spy.objectEnds, "object starts and ends must balance")
	assert.Equal(t, spy.arrayStarts, spy.arrayEnds, "array starts and ends must balance")
	assert.Equal(t, 3, spy.objectStarts)
	assert.Equal(t, 2, spy.arrayStarts)
	assert.Equal(t, 2, spy.elements)
}

func TestWalkStrictNesting(t *testing.T) {
	root := mustTree(t, bson.D{
		{Key: "o", Value: bson.D{{Key: "a", Value: bson.A{int32(1)}}}},
	})

	spy := &spyVisitor{}
	require.NoError(t, Walk(root, spy))

	// Depth recorded at each start event must be exactly one more than the
	// enclosing start, and end events see the same depth as their start.
	depthAt := map[string][]int{}
	for i, ev := range spy.events {
		depthAt[ev] = append(depthAt[ev], spy.depths[i])
	}
	assert.Equal(t, []int{1, 2}, depthAt["objectStart"])
	assert.Equal(t, []int{2, 1}, depthAt["objectEnd"])
	assert.Equal(t, []int{3}, depthAt["arrayStart"])
	assert.Equal(t, []int{3}, depthAt["arrayEnd"])
	assert.Equal(t, []int{4}, depthAt["element"])
}

// scopeCapture records the top scope at every element event.
type scopeCapture struct {
	spyVisitor
	tops    []Scope
	parents []Scope
}

func (sc *scopeCapture) OnElement(ctx *Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	sc.tops = append(sc.tops, top)
	if parent, err := ctx.Item(-2); err == nil {
		sc.parents = append(sc.parents, parent)
	}
	return sc.spyVisitor.OnElement(ctx)
}

func TestWalkScopeIndices(t *testing.T) {
	root := mustTree(t, bson.D{
		{Key: "first", Value: int32(10)},
		{Key: "arr", Value: bson.A{
			"zero",
			bson.D{{Key: "inner", Value: int32(7)}},
		}},
	})

	sc := &scopeCapture{}
	require.NoError(t, Walk(root, sc))
	require.Len(t, sc.tops, 3)

	first := sc.tops[0]
	assert.Equal(t, "first", first.Key)
	assert.Equal(t, 0, first.SiblingIndex)
	assert.Equal(t, 2, first.SiblingCount)
	assert.Equal(t, -1, first.ArrayIndex)
	assert.Equal(t, 0, first.ArrayCount)

	arrZero := sc.tops[1]
	assert.Empty(t, arrZero.Key, "array elements carry no key")
	assert.Equal(t, 0, arrZero.SiblingIndex)
	assert.Equal(t, 2, arrZero.SiblingCount)
	assert.Equal(t, 0, arrZero.ArrayIndex)
	assert.Equal(t, 2, arrZero.ArrayCount)

	// Scalar inside the object that is the second array element inherits
	// the object's array position.
	inner := sc.tops[2]
	assert.Equal(t, "inner", inner.Key)
	assert.Equal(t, 0, inner.SiblingIndex)
	assert.Equal(t, 1, inner.SiblingCount)
	assert.Equal(t, 1, inner.ArrayIndex)
	assert.Equal(t, 2, inner.ArrayCount)

	// The enclosing collection of the inner scalar is the object, whose
	// own parent is the array.
	require.Len(t, sc.parents, 3)
	assert.Equal(t, document.KindObject, sc.parents[2].Kind)
}

func TestWalkRootMustBeObject(t *testing.T) {
	t.Run("nil root", func(t *testing.T) {
		err := Walk(nil, &spyVisitor{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, mterrors.ErrMalformedNode))
	})

	t.Run("scalar root", func(t *testing.T) {
		scalar := document.NewScalar(bson.RawValue{Type: bson.TypeInt32, Value: []byte{1, 0, 0, 0}})
		err := Walk(scalar, &spyVisitor{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, mterrors.ErrMalformedNode))
	})
}

func TestWalkVisitorErrorAborts(t *testing.T) {
	root := mustTree(t, bson.D{
		{Key: "a", Value: int32(1)},
		{Key: "b", Value: int32(2)},
	})

	spy := &spyVisitor{failOn: "element"}
	tr := New(spy)
	err := tr.Parse(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected failure")
	assert.Equal(t, 1, spy.elements, "no events after the failing one")
	assert.Equal(t, 0, tr.ctx.Depth(), "stack must be empty even after abort")
}

func TestTraverserReuse(t *testing.T) {
	root := mustTree(t, bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: int32(5)}}}})

	spy := &spyVisitor{}
	tr := New(spy)
	require.NoError(t, tr.Parse(root))
	firstCount := len(spy.events)

	require.NoError(t, tr.Parse(root))
	assert.Len(t, spy.events, 2*firstCount, "second parse emits the identical event count")
}
