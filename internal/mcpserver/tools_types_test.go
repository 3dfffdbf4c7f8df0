package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTypes(t *testing.T, input typesInput) (*mcp.CallToolResult, typesOutput) {
	t.Helper()
	result, out, err := handleTypes(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, typesOutput{}
	}
	to, ok := out.(typesOutput)
	require.True(t, ok, "expected typesOutput, got %T", out)
	return result, to
}

func TestTypes_FullCatalog(t *testing.T) {
	result, out := callTypes(t, typesInput{})

	require.Nil(t, result)
	require.NotEmpty(t, out.Types)

	byName := make(map[string]typeEntry, len(out.Types))
	for _, entry := range out.Types {
		byName[entry.Name] = entry
	}

	numberInt, ok := byName["NumberInt"]
	require.True(t, ok, "catalog should contain NumberInt")
	assert.Equal(t, 16, numberInt.Code)
	assert.Equal(t, "int32", numberInt.Desc)
	assert.Equal(t, "(NumberInt/int32/16)", numberInt.Annotation)
}

func TestTypes_SortedByCode(t *testing.T) {
	_, out := callTypes(t, typesInput{})

	for i := 1; i < len(out.Types); i++ {
		assert.Less(t, out.Types[i-1].Code, out.Types[i].Code)
	}
}

func TestTypes_MaskNone(t *testing.T) {
	result, out := callTypes(t, typesInput{Mask: "none"})

	require.Nil(t, result)
	for _, entry := range out.Types {
		assert.Empty(t, entry.Annotation)
	}
}

func TestTypes_InvalidMask(t *testing.T) {
	result, out, err := handleTypes(context.Background(), &mcp.CallToolRequest{}, typesInput{Mask: "bogus"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Nil(t, out)
}
