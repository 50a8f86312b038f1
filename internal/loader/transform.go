package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v2 "github.com/pb33f/libopenapi/datamodel/high/v2"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"

	"github.com/swagprobe/swagprobe/internal/model"
)

type transformer struct {
	// definitionSchemas maps resolved definition schemas back to their
	// ref so inlined references regain a "#/definitions/<name>" pointer.
	definitionSchemas map[*base.Schema]string
}

// Transform converts the libopenapi v2 high-level document into the
// typed specification model.
func Transform(doc *v2.Swagger) (*model.Specification, error) {
	t := &transformer{
		definitionSchemas: make(map[*base.Schema]string),
	}

	if doc.Definitions != nil && doc.Definitions.Definitions != nil {
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
			t.definitionSchemas[proxy.Schema()] = "#/definitions/" + name
		}
	}

	spec := &model.Specification{
		Swagger:  "2.0",
		Info:     transformInfo(doc.Info),
		Host:     doc.Host,
		BasePath: doc.BasePath,
		Schemes:  doc.Schemes,
		Consumes: doc.Consumes,
		Produces: doc.Produces,
		Tags:     transformTags(doc.Tags),
	}

	if doc.Definitions != nil && doc.Definitions.Definitions != nil {
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
			schema := t.transformSchema(name, proxy.Schema())
			spec.Definitions = append(spec.Definitions, model.Definition{
				Name:   name,
				Schema: schema,
			})
		}
	}

	if doc.Parameters != nil && doc.Parameters.Definitions != nil {
		for name, param := range doc.Parameters.Definitions.FromOldest() {
			spec.Parameters = append(spec.Parameters, model.NamedParameter{
				Name:      name,
				Parameter: t.transformParameter(param),
			})
		}
	}

	if doc.Paths != nil && doc.Paths.PathItems != nil {
		for template, pathItem := range doc.Paths.PathItems.FromOldest() {
			spec.Paths = append(spec.Paths, t.transformPathItem(template, pathItem))
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformTags(tags []*base.Tag) []model.Tag {
	var result []model.Tag
	for _, tag := range tags {
		result = append(result, model.Tag{
			Name:        tag.Name,
			Description: tag.Description,
		})
	}
	return result
}

func (t *transformer) transformPathItem(template string, pathItem *v2.PathItem) model.PathItem {
	item := model.PathItem{Template: template}

	for _, p := range pathItem.Parameters {
		item.Parameters = append(item.Parameters, t.transformParameter(p))
	}

	// Fixed slice for deterministic operation ordering; the verb set
	// under a path is closed.
	methods := []struct {
		method string
		op     *v2.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPut, pathItem.Put},
		{model.MethodPost, pathItem.Post},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodOptions, pathItem.Options},
		{model.MethodHead, pathItem.Head},
		{model.MethodPatch, pathItem.Patch},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		item.Operations = append(item.Operations, t.transformOperation(m.method, m.op))
	}

	return item
}

func (t *transformer) transformOperation(method string, op *v2.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Consumes:    op.Consumes,
		Produces:    op.Produces,
		Deprecated:  op.Deprecated,
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, t.transformParameter(p))
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, t.transformResponse(code, resp))
		}
	}
	if op.Responses != nil && op.Responses.Default != nil {
		operation.Responses = append(operation.Responses, t.transformResponse("default", op.Responses.Default))
	}

	return operation
}

func (t *transformer) transformParameter(p *v2.Parameter) model.Parameter {
	param := model.Parameter{
		Name:             p.Name,
		In:               p.In,
		Description:      p.Description,
		Required:         boolPtr(p.Required),
		Type:             p.Type,
		Format:           p.Format,
		Pattern:          p.Pattern,
		CollectionFormat: p.CollectionFormat,
		Default:          decodeNode(p.Default),
		Enum:             decodeNodes(p.Enum),
	}

	if p.Items != nil {
		param.Items = transformItems(p.Items)
	}
	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	}

	return param
}

func transformItems(items *v2.Items) *model.Schema {
	schema := &model.Schema{
		Format:  items.Format,
		Default: decodeNode(items.Default),
		Enum:    decodeNodes(items.Enum),
	}
	if items.Type != "" {
		schema.Types = []string{items.Type}
	}
	if items.Items != nil {
		schema.Items = transformItems(items.Items)
	}
	return schema
}

func (t *transformer) transformResponse(code string, resp *v2.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}
	if resp.Schema != nil {
		response.Schema = t.transformSchemaProxy(resp.Schema)
	}
	return response
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	ref := proxy.GetReference()
	if ref == "" {
		if resolved, ok := t.definitionSchemas[proxy.Schema()]; ok {
			return &model.Schema{Ref: resolved}
		}
	}
	if ref != "" {
		// Keep references as pointers; the oracle resolves them through
		// its own cache so cyclic definitions stay finite here.
		return &model.Schema{Ref: ref}
	}

	return t.transformSchema("", proxy.Schema())
}

func (t *transformer) transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Types:       s.Type,
		Format:      s.Format,
		Required:    s.Required,
		Example:     decodeNode(s.Example),
		Default:     decodeNode(s.Default),
		Enum:        decodeNodes(s.Enum),
	}

	schema.XExample = extensionValue(s.Extensions, "x-example")

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := t.transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	if s.Items != nil && s.Items.IsA() {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}
	for _, proxy := range s.PrefixItems {
		schema.ItemsList = append(schema.ItemsList, t.transformSchemaProxy(proxy))
	}

	if s.AdditionalProperties != nil {
		if s.AdditionalProperties.IsA() {
			schema.AdditionalProperties = t.transformSchemaProxy(s.AdditionalProperties.A)
			schema.AdditionalAllowed = true
		} else if s.AdditionalProperties.IsB() && s.AdditionalProperties.B {
			schema.AdditionalAllowed = true
		}
	}

	return schema
}

func extensionValue(extensions *orderedmap.Map[string, *yaml.Node], key string) any {
	if extensions == nil {
		return nil
	}
	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == key {
			return decodeNode(pair.Value())
		}
	}
	return nil
}

// decodeNode unpacks a yaml node into a plain Go value. Scalar nodes
// fall back to their raw string on decode failure.
func decodeNode(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return strings.TrimSpace(node.Value)
	}
	return v
}

func decodeNodes(nodes []*yaml.Node) []any {
	if len(nodes) == 0 {
		return nil
	}
	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		values = append(values, decodeNode(n))
	}
	return values
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
