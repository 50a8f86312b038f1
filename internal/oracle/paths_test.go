package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swagprobe/swagprobe/internal/model"
)

func TestMatchPath(t *testing.T) {
	o := newTestOracle(t)

	tests := []struct {
		name     string
		path     string
		template string
		matched  bool
	}{
		{"exact match", "/v2/pets", "/v2/pets", true},
		{"placeholder match", "/v2/pets/123", "/v2/pets/{petId}", true},
		{"placeholder match with word", "/v2/pets/fido", "/v2/pets/{petId}", true},
		{"extra segment does not match", "/v2/pets/123/extra", "", false},
		{"unknown path", "/v2/unknown", "", false},
		{"missing base path", "/pets", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pathSpec, ok := o.MatchPath(tt.path)
			require.Equal(t, tt.matched, ok)
			if tt.matched {
				require.Equal(t, tt.template, pathSpec.Template)
			}
		})
	}
}

func TestMatchPathPrefersExact(t *testing.T) {
	spec := petSpec()
	// A literal path that would also satisfy the {petId} wildcard.
	spec.Paths = append(spec.Paths, model.PathItem{
		Template: "/pets/special",
		Operations: []model.Operation{
			{
				ID:        "getSpecial",
				Method:    model.MethodGet,
				Responses: []model.Response{{StatusCode: "200", Description: "ok"}},
			},
		},
	})
	o := New(spec, nil)

	pathSpec, ok := o.MatchPath("/v2/pets/special")
	require.True(t, ok)
	require.Equal(t, "/v2/pets/special", pathSpec.Template)
}

func TestOperationSpecLookup(t *testing.T) {
	o := newTestOracle(t)

	opSpec, ok := o.OperationSpec("/v2/pets", "get")
	require.True(t, ok)
	require.Equal(t, "/v2/pets", opSpec.Path)
	require.Equal(t, model.MethodGet, opSpec.Method)
	require.Contains(t, opSpec.Parameters, "limit")

	opSpec, ok = o.OperationSpec("/v2/pets/123", "GET")
	require.True(t, ok)
	require.Equal(t, "/v2/pets/{petId}", opSpec.Path)

	_, ok = o.OperationSpec("/v2/pets", "delete")
	require.False(t, ok)
}

func TestGlobalParameterExpansion(t *testing.T) {
	o := newTestOracle(t)

	opSpec, ok := o.OperationSpec("/v2/tags", "get")
	require.True(t, ok)

	limit, ok := opSpec.Parameters["limit"]
	require.True(t, ok)
	require.Equal(t, model.InQuery, limit.In)
	require.Equal(t, model.TypeInteger, limit.Type)
}

func TestPathLevelParametersMerge(t *testing.T) {
	spec := petSpec()
	spec.Paths = append(spec.Paths, model.PathItem{
		Template: "/shared",
		Parameters: []model.Parameter{
			{Name: "common", In: model.InQuery, Type: model.TypeString},
			{Name: "limit", In: model.InQuery, Type: model.TypeString},
		},
		Operations: []model.Operation{
			{
				ID:     "shared",
				Method: model.MethodGet,
				Parameters: []model.Parameter{
					// Overrides the path-level parameter of the same name.
					{Name: "limit", In: model.InQuery, Type: model.TypeInteger},
				},
				Responses: []model.Response{{StatusCode: "200", Description: "ok"}},
			},
		},
	})
	o := New(spec, nil)

	opSpec, ok := o.OperationSpec("/v2/shared", "get")
	require.True(t, ok)
	require.Equal(t, model.TypeString, opSpec.Parameters["common"].Type)
	require.Equal(t, model.TypeInteger, opSpec.Parameters["limit"].Type)
}

func TestOperationByID(t *testing.T) {
	o := newTestOracle(t)

	ref, ok := o.OperationByID("listPets")
	require.True(t, ok)
	require.Equal(t, OperationRef{Path: "/v2/pets", Method: model.MethodGet, Tag: "pets"}, ref)

	_, ok = o.OperationByID("ghost")
	require.False(t, ok)
}

func TestGeneratedOperationIDs(t *testing.T) {
	o := newTestOracle(t)

	// The /pets/{petId} get has no operationId; it is addressable by the
	// hash of its verb and full path.
	id := operationHash(model.MethodGet, "/v2/pets/{petId}")
	ref, ok := o.OperationByID(id)
	require.True(t, ok)
	require.Equal(t, "/v2/pets/{petId}", ref.Path)
	require.Equal(t, model.MethodGet, ref.Method)

	generated := o.GeneratedOperations()
	require.Contains(t, generated, id)
	require.NotContains(t, generated, "listPets")
}

func TestOperationHash(t *testing.T) {
	require.Equal(t,
		"3bd818fb7d55daf2fb8bf3354c061f9ba7f8cece39b30bdcb7e05551053ec2e8",
		operationHash("post", "/test"))
}

func TestTemplateMatcher(t *testing.T) {
	tests := []struct {
		template string
		path     string
		matches  bool
	}{
		{"/pets/{petId}", "/pets/123", true},
		{"/pets/{petId}", "/pets/", true},
		{"/pets/{petId}", "/pets/1/2", false},
		{"/pets/{petId}/photos/{photoId}", "/pets/1/photos/2", true},
		{"/pets", "/pets", true},
		{"/pets", "/petsX", false},
		{"/a.b/{id}", "/a.b/1", true},
		{"/a.b/{id}", "/aXb/1", false},
	}

	for _, tt := range tests {
		t.Run(tt.template+" vs "+tt.path, func(t *testing.T) {
			require.Equal(t, tt.matches, templateMatcher(tt.template).MatchString(tt.path))
		})
	}
}
