package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/mterrors"
)

func TestNodeAccessors(t *testing.T) {
	root, err := FromD(bson.D{
		{Key: "name", Value: "milo"},
		{Key: "tags", Value: bson.A{"a", "b"}},
	})
	require.NoError(t, err)
	require.Equal(t, KindObject, root.Kind())
	require.Equal(t, 2, root.Len())

	fields, err := root.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Key)
	assert.Equal(t, "tags", fields[1].Key)

	scalar := fields[0].Value
	require.Equal(t, KindScalar, scalar.Kind())
	val, err := scalar.Value()
	require.NoError(t, err)
	assert.Equal(t, bson.TypeString, val.Type)
	assert.Equal(t, 0, scalar.Len())

	arr := fields[1].Value
	require.Equal(t, KindArray, arr.Kind())
	elems, err := arr.Elements()
	require.NoError(t, err)
	assert.Len(t, elems, 2)
}

func TestNodeAccessorsMismatch(t *testing.T) {
	root, err := FromD(bson.D{{Key: "a", Value: int32(1)}})
	require.NoError(t, err)

	_, err = root.Elements()
	require.Error(t, err)
	assert.True(t, errors.Is(err, mterrors.ErrMalformedNode))

	var malformed *mterrors.MalformedNodeError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "Array", malformed.Expected)
	assert.Equal(t, "Object", malformed.Actual)

	_, err = root.Value()
	assert.True(t, errors.Is(err, mterrors.ErrMalformedNode))

	fields, err := root.Fields()
	require.NoError(t, err)
	_, err = fields[0].Value.Fields()
	assert.True(t, errors.Is(err, mterrors.ErrMalformedNode))
}

func TestNodeType(t *testing.T) {
	root, err := FromD(bson.D{
		{Key: "obj", Value: bson.D{}},
		{Key: "arr", Value: bson.A{}},
		{Key: "num", Value: 3.5},
	})
	require.NoError(t, err)

	fields, err := root.Fields()
	require.NoError(t, err)
	assert.Equal(t, bson.TypeEmbeddedDocument, fields[0].Value.Type())
	assert.Equal(t, bson.TypeArray, fields[1].Value.Type())
	assert.Equal(t, bson.TypeDouble, fields[2].Value.Type())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Object", KindObject.String())
	assert.Equal(t, "Array", KindArray.String())
	assert.Equal(t, "Scalar", KindScalar.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.True(t, KindArray.IsValid())
	assert.False(t, Kind(9).IsValid())
}
