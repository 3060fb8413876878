package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectJSON = `{
  "components": {"schemas": {
    "A": {"properties": {
      "address": {"type": "object", "properties": {"street": {"type": "string"}}},
      "zip_code": {"type": "string"}
    }},
    "B": {"properties": {
      "address": {"type": "object", "properties": {"street": {"type": "string"}}},
      "zip_code": {"type": "object"},
      "note": {"type": "string"}
    }}
  }}
}`

func TestHandleInspect(t *testing.T) {
	specCache.reset()

	result, out, err := handleInspect(context.Background(), nil, inspectInput{
		Spec: specInput{Content: inspectJSON},
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 4, out.GroupCount)
	assert.Equal(t, 4, out.FieldCount)
	assert.Equal(t, 3, out.CandidateCount)
	require.Len(t, out.Candidates, 3)
	assert.Equal(t, candidateSummary{Name: "address", Kind: "composite", Variants: 2, Shapes: 1}, out.Candidates[0])
	// Scalars keep discovery order: zip_code is seen before street.
	assert.Equal(t, candidateSummary{Name: "zip_code", Kind: "scalar", Type: "string", Variants: 2, Shapes: 2}, out.Candidates[1])
	assert.Equal(t, "street", out.Candidates[2].Name)
	assert.Equal(t, map[string]string{"street": "string", "zip_code": "string", "note": "string"}, out.Types)
}

func TestHandleInspect_Filter(t *testing.T) {
	specCache.reset()

	_, out, err := handleInspect(context.Background(), nil, inspectInput{
		Spec:           specInput{Content: inspectJSON},
		Name:           "*_code",
		MinOccurrences: 1,
	})
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "zip_code", out.Candidates[0].Name)
	assert.Equal(t, map[string]string{"zip_code": "string"}, out.Types)
}

func TestHandleInspect_Errors(t *testing.T) {
	result, _, err := handleInspect(context.Background(), nil, inspectInput{
		Spec: specInput{Content: inspectJSON},
		Name: "[",
	})
	require.NoError(t, err)
	assert.Contains(t, errText(t, result), "invalid glob pattern")

	result, _, err = handleInspect(context.Background(), nil, inspectInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMatchGlobName(t *testing.T) {
	assert.True(t, matchGlobName("", "anything"))
	assert.True(t, matchGlobName("price", "price"))
	assert.False(t, matchGlobName("price", "prices"))
	assert.True(t, matchGlobName("*_id", "user_id"))
	assert.False(t, matchGlobName("*_id", "user"))
}
