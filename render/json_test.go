package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestJSONPackedExact(t *testing.T) {
	got := renderString(t, StyleJSONPacked, bson.D{
		{Key: "a", Value: int32(1)},
		{Key: "b", Value: bson.A{int32(1), bson.D{{Key: "c", Value: "x"}}}},
	})
	assert.Equal(t, `{"a":1,"b":[1,{"c":"x"}]}`, got)
}

func TestJSONCommaCount(t *testing.T) {
	got := renderString(t, StyleJSONPacked, bson.D{
		{Key: "a", Value: int32(1)},
		{Key: "b", Value: int32(2)},
		{Key: "c", Value: int32(3)},
	})
	assert.Equal(t, 2, strings.Count(got, ","), "three siblings need exactly two commas")
}

func TestJSONPrettyParses(t *testing.T) {
	got := renderString(t, StyleJSON, bson.D{
		{Key: "a", Value: int32(1)},
		{Key: "b", Value: bson.A{
			"s",
			bson.D{{Key: "c", Value: true}},
			bson.A{float64(1.5)},
		}},
		{Key: "d", Value: nil},
	})

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &v))
	assert.Equal(t, float64(1), v["a"])
	assert.Nil(t, v["d"])
}

func TestJSONPrettyIndentation(t *testing.T) {
	got := renderString(t, StyleJSON,
		bson.D{{Key: "o", Value: bson.D{{Key: "k", Value: int32(1)}}}},
		WithIndent("  "),
	)
	expected := "\n{" +
		"\n  \"o\": {" +
		"\n    \"k\": 1" +
		"\n  }" +
		"\n}"
	assert.Equal(t, expected, got)
}

func TestJSONBaseLevel(t *testing.T) {
	got := renderString(t, StyleJSON,
		bson.D{{Key: "a", Value: int32(1)}},
		WithIndent("  "),
		WithBaseLevel(1),
	)
	assert.Equal(t, "\n  {\n    \"a\": 1\n  }", got)
}

func TestJSONStringEscaping(t *testing.T) {
	got := renderString(t, StyleJSONPacked, bson.D{
		{Key: `qu"ote`, Value: "line\none"},
		{Key: "tab", Value: "a\tb"},
	})

	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(got), &v))
	assert.Equal(t, "line\none", v[`qu"ote`])
	assert.Equal(t, "a\tb", v["tab"])
}

func TestJSONExoticTypes(t *testing.T) {
	oid := bson.NewObjectID()
	got := renderString(t, StyleJSONPacked, bson.D{
		{Key: "id", Value: oid},
		{Key: "dec", Value: bson.NewDecimal128(0, 42)},
		{Key: "none", Value: bson.Undefined{}},
	})

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &v))
	assert.Equal(t, oid.Hex(), v["id"])
	assert.Nil(t, v["none"])
}

func TestJSONEmptyFieldName(t *testing.T) {
	got := renderString(t, StyleJSONPacked, bson.D{
		{Key: "", Value: int32(1)},
		{Key: "b", Value: bson.D{{Key: "", Value: "x"}}},
	})
	assert.Equal(t, `{"":1,"b":{"":"x"}}`, got)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &v))
	assert.Equal(t, float64(1), v[""])
}

func TestJSONArrayOfScalars(t *testing.T) {
	got := renderString(t, StyleJSONPacked,
		bson.D{{Key: "xs", Value: bson.A{int32(1), int32(2), int32(3)}}},
	)
	assert.Equal(t, `{"xs":[1,2,3]}`, got)
}
