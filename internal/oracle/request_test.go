package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swagprobe/swagprobe/internal/model"
)

func TestResponseExample(t *testing.T) {
	o := newTestOracle(t)

	tests := []struct {
		name     string
		response *model.Response
		expected any
	}{
		{
			name:     "nil response",
			response: nil,
			expected: "",
		},
		{
			name:     "no schema",
			response: &model.Response{StatusCode: "404", Description: "not found"},
			expected: "",
		},
		{
			name:     "referenced definition",
			response: &model.Response{StatusCode: "200", Schema: refSchema("Pet")},
			expected: map[string]any{"id": 42, "name": "string"},
		},
		{
			name: "array of referenced definitions",
			response: &model.Response{StatusCode: "200", Schema: &model.Schema{
				Types: []string{model.TypeArray},
				Items: refSchema("Tag"),
			}},
			expected: []any{map[string]any{"id": 42, "name": "string"}},
		},
		{
			name: "array of basic type",
			response: &model.Response{StatusCode: "200", Schema: &model.Schema{
				Types: []string{model.TypeArray},
				Items: strSchema(),
			}},
			expected: []any{"string", "string2"},
		},
		{
			name:     "basic type",
			response: &model.Response{StatusCode: "200", Schema: intSchema()},
			expected: 42,
		},
		{
			name: "unresolvable reference degrades to empty",
			response: &model.Response{StatusCode: "200", Schema: &model.Schema{
				Ref: "#/definitions/Ghost",
			}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, o.ResponseExample(tt.response))
		})
	}
}

func TestRequestData(t *testing.T) {
	o := newTestOracle(t)

	data := o.RequestData("/v2/pets", "get", nil)
	require.Equal(t, map[string]any{
		"200": []any{map[string]any{"id": 42, "name": "string"}},
	}, data)

	data = o.RequestData("/v2/pets/123", "get", nil)
	require.Equal(t, map[string]any{
		"200": map[string]any{"id": 42, "name": "string"},
		"404": "",
	}, data)
}

func TestRequestDataUnknownOperation(t *testing.T) {
	o := newTestOracle(t)

	require.Equal(t, map[string]any{"400": ""}, o.RequestData("/v2/unknown", "get", nil))
	require.Equal(t, map[string]any{"400": ""}, o.RequestData("/v2/pets", "delete", nil))
}

func TestCorrectRequestBody(t *testing.T) {
	o := newTestOracle(t)

	body, ok := o.CorrectRequestBody("/v2/pets", "post")
	require.True(t, ok)
	require.Equal(t, map[string]any{"id": 42, "name": "string"}, body)
}

func TestCorrectRequestBodyNoBodyParameter(t *testing.T) {
	o := newTestOracle(t)

	_, ok := o.CorrectRequestBody("/v2/pets", "get")
	require.False(t, ok)

	_, ok = o.CorrectRequestBody("/v2/unknown", "post")
	require.False(t, ok)
}

func TestCorrectRequestBodyShapes(t *testing.T) {
	spec := petSpec()
	spec.Paths = append(spec.Paths,
		bodyPath("/typed", model.Parameter{
			Name: "count", In: model.InBody, Type: model.TypeInteger,
		}),
		bodyPath("/batch", model.Parameter{
			Name: "pets", In: model.InBody, Schema: &model.Schema{
				Types: []string{model.TypeArray},
				Items: refSchema("Pet"),
			},
		}),
		bodyPath("/raw", model.Parameter{
			Name: "note", In: model.InBody, Schema: strSchema(),
		}),
	)
	o := New(spec, nil)

	body, ok := o.CorrectRequestBody("/v2/typed", "post")
	require.True(t, ok)
	require.Equal(t, 42, body)

	body, ok = o.CorrectRequestBody("/v2/batch", "post")
	require.True(t, ok)
	require.Equal(t, []any{map[string]any{"id": 42, "name": "string"}}, body)

	body, ok = o.CorrectRequestBody("/v2/raw", "post")
	require.True(t, ok)
	require.Equal(t, "string", body)
}

func bodyPath(template string, param model.Parameter) model.PathItem {
	return model.PathItem{
		Template: template,
		Operations: []model.Operation{
			{
				Method:     model.MethodPost,
				Parameters: []model.Parameter{param},
				Responses:  []model.Response{{StatusCode: "200", Description: "ok"}},
			},
		},
	}
}
