package document

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/mterrors"
)

// Kind identifies the variant a Node holds.
type Kind int

const (
	// KindObject is a mapping node with named, ordered children.
	KindObject Kind = iota

	// KindArray is a sequence node with positional children.
	KindArray

	// KindScalar is a terminal value node with a BSON type tag.
	KindScalar
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	return k >= KindObject && k <= KindScalar
}

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindScalar:
		return "Scalar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one named child of an Object node. Field order within an Object
// is the order stored in the source document.
type Field struct {
	Key   string
	Value *Node
}

// Node is one node of a document tree. It is a closed tagged union over the
// three kinds; exactly one of the payload slots is valid at a time and the
// accessors enforce that.
type Node struct {
	kind   Kind
	fields []Field
	elems  []*Node
	value  bson.RawValue
}

// NewObject builds an Object node from its fields, preserving order.
func NewObject(fields []Field) *Node {
	return &Node{kind: KindObject, fields: fields}
}

// NewArray builds an Array node from its elements, preserving order.
func NewArray(elems []*Node) *Node {
	return &Node{kind: KindArray, elems: elems}
}

// NewScalar builds a Scalar node from a BSON value.
func NewScalar(value bson.RawValue) *Node {
	return &Node{kind: KindScalar, value: value}
}

// Kind returns the variant this node holds.
func (n *Node) Kind() Kind {
	return n.kind
}

// Len returns the number of children: field count for Objects, element
// count for Arrays, and 0 for Scalars.
func (n *Node) Len() int {
	switch n.kind {
	case KindObject:
		return len(n.fields)
	case KindArray:
		return len(n.elems)
	default:
		return 0
	}
}

// Fields returns the ordered fields of an Object node. It fails with a
// *mterrors.MalformedNodeError if the node is not an Object.
func (n *Node) Fields() ([]Field, error) {
	if n.kind != KindObject {
		return nil, &mterrors.MalformedNodeError{Expected: KindObject.String(), Actual: n.kind.String()}
	}
	return n.fields, nil
}

// Elements returns the ordered elements of an Array node. It fails with a
// *mterrors.MalformedNodeError if the node is not an Array.
func (n *Node) Elements() ([]*Node, error) {
	if n.kind != KindArray {
		return nil, &mterrors.MalformedNodeError{Expected: KindArray.String(), Actual: n.kind.String()}
	}
	return n.elems, nil
}

// Value returns the BSON value of a Scalar node. It fails with a
// *mterrors.MalformedNodeError if the node is not a Scalar.
func (n *Node) Value() (bson.RawValue, error) {
	if n.kind != KindScalar {
		return bson.RawValue{}, &mterrors.MalformedNodeError{Expected: KindScalar.String(), Actual: n.kind.String()}
	}
	return n.value, nil
}

// Type returns the BSON type tag: the scalar's own type for Scalars,
// bson.TypeEmbeddedDocument for Objects and bson.TypeArray for Arrays.
func (n *Node) Type() bson.Type {
	switch n.kind {
	case KindObject:
		return bson.TypeEmbeddedDocument
	case KindArray:
		return bson.TypeArray
	default:
		return n.value.Type
	}
}
