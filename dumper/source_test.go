package dumper

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/mterrors"
)

func mustRaw(t *testing.T, d bson.D) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(d)
	require.NoError(t, err)
	return bson.Raw(raw)
}

func TestSliceSource(t *testing.T) {
	ctx := context.Background()
	src := NewSliceSource(
		mustRaw(t, bson.D{{Key: "a", Value: int32(1)}}),
		mustRaw(t, bson.D{{Key: "b", Value: int32(2)}}),
	)

	n, err := src.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	first, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", firstKey(t, first))

	second, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", firstKey(t, second))

	_, err = src.Next(ctx)
	assert.True(t, errors.Is(err, io.EOF))

	assert.NoError(t, src.Close(ctx))
}

func firstKey(t *testing.T, doc bson.Raw) string {
	t.Helper()
	elems, err := doc.Elements()
	require.NoError(t, err)
	require.NotEmpty(t, elems)
	key, err := elems[0].KeyErr()
	require.NoError(t, err)
	return key
}

func TestExtJSONSource(t *testing.T) {
	ctx := context.Background()
	input := `{"a": 1}

{"b": {"$numberLong": "42"}}
`
	src := NewExtJSONSource("input", strings.NewReader(input))

	first, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", firstKey(t, first))

	second, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", firstKey(t, second))
	val, err := second.LookupErr("b")
	require.NoError(t, err)
	assert.Equal(t, int64(42), val.Int64())

	_, err = src.Next(ctx)
	assert.True(t, errors.Is(err, io.EOF))

	assert.NoError(t, src.Close(ctx))
}

func TestExtJSONSourceMalformed(t *testing.T) {
	src := NewExtJSONSource("docs.json", strings.NewReader("{not json\n"))

	_, err := src.Next(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mterrors.ErrDecode))
	assert.Contains(t, err.Error(), "docs.json:1")
}

func TestExtJSONSourceEmptyInput(t *testing.T) {
	src := NewExtJSONSource("empty", strings.NewReader("\n\n"))

	_, err := src.Next(context.Background())
	assert.True(t, errors.Is(err, io.EOF))
}
