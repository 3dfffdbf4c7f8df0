package document

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/mterrors"
)

// FromRaw decodes raw BSON document bytes into a tree. Field order is the
// order stored in the document; no sorting is performed.
func FromRaw(raw bson.Raw) (*Node, error) {
	if err := raw.Validate(); err != nil {
		return nil, &mterrors.DecodeError{Source: "raw bson", Message: "invalid document", Cause: err}
	}
	return decodeDocument(raw)
}

// FromD decodes a bson.D into a tree by marshaling it to raw BSON first,
// so every input shares one decoding path. Useful for building trees in
// tests and examples.
func FromD(d bson.D) (*Node, error) {
	raw, err := bson.Marshal(d)
	if err != nil {
		return nil, &mterrors.DecodeError{Source: "bson.D", Message: "marshaling document", Cause: err}
	}
	return FromRaw(raw)
}

// FromExtJSON decodes one extended JSON document (canonical or relaxed)
// into a tree.
func FromExtJSON(data []byte) (*Node, error) {
	var d bson.D
	if err := bson.UnmarshalExtJSON(data, false, &d); err != nil {
		return nil, &mterrors.DecodeError{Source: "extended json", Message: "unmarshaling document", Cause: err}
	}
	return FromD(d)
}

// decodeDocument walks the elements of a raw document in stored order.
func decodeDocument(raw bson.Raw) (*Node, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, &mterrors.DecodeError{Source: "raw bson", Message: "reading elements", Cause: err}
	}
	fields := make([]Field, 0, len(elems))
	for _, elem := range elems {
		key, err := elem.KeyErr()
		if err != nil {
			return nil, &mterrors.DecodeError{Source: "raw bson", Message: "reading element key", Cause: err}
		}
		val, err := elem.ValueErr()
		if err != nil {
			return nil, &mterrors.DecodeError{Source: "raw bson", Message: "reading element value", Cause: err}
		}
		child, err := decodeValue(val)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: key, Value: child})
	}
	return NewObject(fields), nil
}

// decodeArray walks the elements of a raw array in stored order. A BSON
// array is encoded as a document with ascending numeric keys; the keys are
// discarded and only positions kept.
func decodeArray(raw bson.Raw) (*Node, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, &mterrors.DecodeError{Source: "raw bson", Message: "reading array elements", Cause: err}
	}
	children := make([]*Node, 0, len(elems))
	for _, elem := range elems {
		val, err := elem.ValueErr()
		if err != nil {
			return nil, &mterrors.DecodeError{Source: "raw bson", Message: "reading array element", Cause: err}
		}
		child, err := decodeValue(val)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewArray(children), nil
}

func decodeValue(val bson.RawValue) (*Node, error) {
	switch val.Type {
	case bson.TypeEmbeddedDocument:
		return decodeDocument(bson.Raw(val.Value))
	case bson.TypeArray:
		return decodeArray(bson.Raw(val.Value))
	default:
		return NewScalar(val), nil
	}
}
