package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchInput struct {
	Query string `json:"query" jsonschema:"description=Search query"`
	Limit int    `json:"limit,omitempty"`
}

func TestNewTool_SchemaFromStruct(t *testing.T) {
	tool := NewTool[searchInput]("search", "Search the corpus")

	assert.Equal(t, "search", tool.Name)
	assert.Equal(t, "Search the corpus", tool.Description)
	require.NotNil(t, tool.InputSchema)

	props, ok := tool.InputSchema["properties"].(map[string]any)
	require.True(t, ok, "schema must carry a properties object")
	assert.Contains(t, props, "query")
	assert.Contains(t, props, "limit")

	required, ok := tool.InputSchema["required"].([]any)
	require.True(t, ok)
	assert.Contains(t, required, "query")
	assert.NotContains(t, required, "limit")

	assert.NotContains(t, tool.InputSchema, "$schema")
}

func TestBuildTools_RequiredExtraction(t *testing.T) {
	params := buildTools([]Tool{NewTool[searchInput]("search", "d")})
	require.Len(t, params, 1)
	require.NotNil(t, params[0].OfTool)
	assert.Equal(t, "search", params[0].OfTool.Name)
	assert.Equal(t, []string{"query"}, params[0].OfTool.InputSchema.Required)
}
