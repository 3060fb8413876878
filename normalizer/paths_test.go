package normalizer

import (
	"testing"

	"github.com/erraggy/oascomponents/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathParam(name string) obj {
	return obj{"name": name, "in": "path", "required": true}
}

func TestIDTokens(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/users/1a2b/orders/42", []string{"1a2b", "42"}},
		{"/items/7/7/related/8", []string{"7", "8"}},
		{"/feed/add/cafe", nil},
		{"/v1/users", nil},
		{"/users/{id_0}", nil},
		{"/blobs/DEADBEEF01", []string{"DEADBEEF01"}},
		{"/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, idTokens(tt.path))
		})
	}
}

func TestReplaceToken(t *testing.T) {
	assert.Equal(t, "Get {id_0} of 142", replaceToken("Get 42 of 142", "42", "{id_0}"))
	assert.Equal(t, "/a/{x}/b/{x}", replaceToken("/a/7/b/7", "7", "{x}"))
}

func TestNormalizePaths(t *testing.T) {
	paths := obj{
		"/users/1a2b/orders/42": obj{
			"get": obj{"summary": "Order 42 of user 1a2b"},
			"delete": obj{
				"parameters": []any{obj{"name": "force", "in": "query"}},
			},
			"x-ignored": "not an operation",
		},
		"/items/7":   obj{"get": obj{"summary": "Get item 7"}},
		"/items":     obj{"get": obj{"summary": "List 7 items"}},
		"/broken/99": "not a path item",
	}

	rewrites := normalizePaths(paths, "id_", document.NopLogger{})

	require.Len(t, rewrites, 2)
	assert.Equal(t, PathRewrite{
		From:         "/items/7",
		To:           "/items/{id_0}",
		Placeholders: []Placeholder{{Name: "id_0", Token: "7"}},
	}, rewrites[0])
	assert.Equal(t, "/users/{id_0}/orders/{id_1}", rewrites[1].To)
	assert.Equal(t, []Placeholder{{Name: "id_0", Token: "1a2b"}, {Name: "id_1", Token: "42"}}, rewrites[1].Placeholders)

	assert.Equal(t, obj{
		"/users/{id_0}/orders/{id_1}": obj{
			"get": obj{
				"summary":    "Order {id_1} of user {id_0}",
				"parameters": []any{pathParam("id_0"), pathParam("id_1")},
			},
			"delete": obj{
				"parameters": []any{obj{"name": "force", "in": "query"}, pathParam("id_0"), pathParam("id_1")},
			},
			"x-ignored": "not an operation",
		},
		"/items/{id_0}": obj{"get": obj{
			"summary":    "Get item {id_0}",
			"parameters": []any{pathParam("id_0")},
		}},
		"/items":     obj{"get": obj{"summary": "List 7 items"}},
		"/broken/99": "not a path item",
	}, paths)
}

func TestNormalizePaths_Collision(t *testing.T) {
	paths := obj{
		"/items/{id_0}": obj{"get": obj{"summary": "existing"}},
		"/items/5": obj{
			"get":    obj{"summary": "Get 5"},
			"delete": obj{"summary": "Delete 5"},
		},
	}

	rewrites := normalizePaths(paths, "id_", document.NopLogger{})

	require.Len(t, rewrites, 1)
	assert.True(t, rewrites[0].Merged)
	require.Len(t, paths, 1)
	item := paths["/items/{id_0}"].(obj)
	assert.Equal(t, obj{"summary": "existing"}, item["get"])
	assert.Equal(t, obj{"summary": "Delete {id_0}", "parameters": []any{pathParam("id_0")}}, item["delete"])
}

func TestNormalizePaths_CustomPrefixAndBadParameters(t *testing.T) {
	paths := obj{
		"/things/12": obj{"put": obj{"parameters": "oops"}},
	}

	rewrites := normalizePaths(paths, "p", document.NopLogger{})

	require.Len(t, rewrites, 1)
	assert.Equal(t, "/things/{p0}", rewrites[0].To)
	assert.Equal(t, obj{"parameters": "oops"}, paths["/things/{p0}"].(obj)["put"])
}

func TestNormalizePaths_SkipsUsedPlaceholders(t *testing.T) {
	paths := obj{
		"/users/{id_0}/orders/42": obj{
			"get": obj{"parameters": []any{pathParam("id_0")}},
		},
		"/a/{id_1}/b/5/c/6": obj{"get": obj{}},
	}

	rewrites := normalizePaths(paths, "id_", document.NopLogger{})

	require.Len(t, rewrites, 2)
	assert.Equal(t, "/a/{id_1}/b/{id_0}/c/{id_2}", rewrites[0].To)
	assert.Equal(t, []Placeholder{{Name: "id_0", Token: "5"}, {Name: "id_2", Token: "6"}}, rewrites[0].Placeholders)
	assert.Equal(t, "/users/{id_0}/orders/{id_1}", rewrites[1].To)

	get := paths["/users/{id_0}/orders/{id_1}"].(obj)["get"].(obj)
	assert.Equal(t, []any{pathParam("id_0"), pathParam("id_1")}, get["parameters"])
}
