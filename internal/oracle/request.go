package oracle

import (
	"github.com/swagprobe/swagprobe/internal/model"
)

// ResponseExample synthesizes the representative payload for one
// declared response. Responses without a schema (or that cannot be
// synthesized) come back as the empty string.
func (o *Oracle) ResponseExample(resp *model.Response) any {
	if resp == nil || resp.Schema == nil {
		return ""
	}
	schema := resp.Schema

	if schema.Ref != "" {
		if example, ok := o.exampleFromRef(schema.Ref); ok {
			return example
		}
		return ""
	}

	if schema.PrimaryType() == model.TypeArray && schema.Items != nil {
		if schema.Items.Ref != "" {
			name, err := DefinitionNameFromRef(schema.Items.Ref)
			if err == nil && o.BuildDefinitionExample(name) {
				return []any{o.examples[name]}
			}
			return ""
		}
		if example, ok := o.ExampleFor(schema); ok {
			return example
		}
		return ""
	}

	if example, ok := o.ExampleFor(schema); ok {
		return example
	}

	o.log.Warn().Msg("response schema yields no example")
	return ""
}

// RequestData maps every declared status code of the matched operation
// to its synthesized response payload. Unknown operations yield a
// single 400 entry with an empty body. The body argument is accepted
// for callers that derive request data and response data in one step
// but does not influence the result.
func (o *Oracle) RequestData(path, method string, body any) map[string]any {
	_ = body

	opSpec, ok := o.OperationSpec(path, method)
	if !ok {
		return map[string]any{"400": ""}
	}

	data := make(map[string]any, len(opSpec.Responses))
	for i := range opSpec.Responses {
		resp := &opSpec.Responses[i]
		data[resp.StatusCode] = o.ResponseExample(resp)
	}
	if len(data) == 0 {
		return map[string]any{"400": ""}
	}
	return data
}

// CorrectRequestBody synthesizes a body the operation would accept,
// derived from its body parameter. Operations without a body parameter
// (or whose body cannot be synthesized) report false.
func (o *Oracle) CorrectRequestBody(path, method string) (any, bool) {
	opSpec, ok := o.OperationSpec(path, method)
	if !ok {
		return nil, false
	}

	bodyParam := findBodyParameter(opSpec.Parameters)
	if bodyParam == nil {
		return nil, false
	}

	if bodyParam.Type != "" {
		return o.ExampleFor(&model.Schema{
			Types:   []string{bodyParam.Type},
			Format:  bodyParam.Format,
			Default: bodyParam.Default,
			Enum:    bodyParam.Enum,
		})
	}

	schema := bodyParam.Schema
	if schema == nil {
		return nil, false
	}

	if schema.PrimaryType() == model.TypeArray && schema.Items != nil {
		if schema.Items.Ref != "" {
			name, err := DefinitionNameFromRef(schema.Items.Ref)
			if err != nil || !o.BuildDefinitionExample(name) {
				return nil, false
			}
			return []any{o.examples[name]}, true
		}
		return o.ExampleFor(schema)
	}

	if schema.HasType() {
		return o.ExampleFor(schema)
	}

	if schema.Ref != "" {
		return o.exampleFromRef(schema.Ref)
	}

	return o.ExampleFor(schema)
}
