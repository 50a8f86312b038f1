package oracle

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/swagprobe/swagprobe/internal/model"
)

// ValidateRequest checks a request's body and query against the matched
// operation. A false result is the normal "spec says no" answer; the
// reason is logged at warn level for diagnostics.
func (o *Oracle) ValidateRequest(path, method string, body any, query map[string]any) bool {
	method = strings.ToLower(method)

	opSpec, ok := o.OperationSpec(path, method)
	if !ok {
		o.log.Warn().Str("path", path).Str("method", method).Msg("no operation matches the request")
		return false
	}

	if method == model.MethodPost {
		normalized, ok := o.validatePostBody(body, opSpec)
		if !ok {
			return false
		}
		body = normalized
	}

	// A validated-empty body with no query needs no parameter checks;
	// note this means a query-only call never revisits body parameters.
	if isEmptyBody(body) {
		if query == nil {
			return true
		}
	} else if !o.validateBodyParameters(body, opSpec) {
		return false
	}

	if query != nil && !o.validateQueryParameters(query, opSpec) {
		return false
	}

	return true
}

// validatePostBody applies the POST body/MIME policy and returns the
// body to use for the remaining checks: string bodies are decoded to
// JSON when the operation accepts only JSON.
func (o *Oracle) validatePostBody(body any, opSpec *OperationSpec) (any, bool) {
	bodyParam := findBodyParameter(opSpec.Parameters)
	if bodyParam == nil {
		return body, true
	}

	if bodyParam.Required && bodyParam.Schema == nil {
		o.log.Warn().Msg("body is required but the parameter declares no schema")
		return nil, false
	}

	textAccepted := mimeAccepted(opSpec.Consumes, "text")
	jsonAccepted := mimeAccepted(opSpec.Consumes, "json")

	if s, ok := body.(string); ok && s == "" && !textAccepted {
		o.log.Warn().Msg("post body is an empty string, but text is not an accepted mime type")
		return nil, false
	}
	if m, ok := body.(map[string]any); ok && len(m) == 0 && !jsonAccepted {
		o.log.Warn().Msg("post body is an empty object, but json is not an accepted mime type")
		return nil, false
	}

	if s, ok := body.(string); ok && jsonAccepted && !textAccepted {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			o.log.Warn().Err(err).Msg("post body is not valid json")
			return nil, false
		}
		body = decoded
	}

	if isEmptyBody(body) && bodyParam.Required {
		o.log.Warn().Msg("post body is empty, but a required body parameter exists")
		return nil, false
	}

	return body, true
}

// validateBodyParameters checks the body against every declared
// body-kind parameter. Array bodies are sampled: only the first element
// is validated against the item definition, a documented limitation
// rather than a guarantee about the whole array.
func (o *Oracle) validateBodyParameters(body any, opSpec *OperationSpec) bool {
	processed := make(map[string]bool)

	for name, param := range opSpec.Parameters {
		if param.In != model.InBody {
			continue
		}
		processed[name] = true

		switch {
		case param.Type != "":
			if !o.CheckType(body, param.Type) {
				o.log.Warn().Str("type", param.Type).Msg("body failed its declared type check")
				return false
			}

		case param.Schema != nil:
			if !o.validateBodySchema(body, param.Schema) {
				return false
			}
		}
	}

	for name, param := range opSpec.Parameters {
		if param.In == model.InBody && param.Required && !processed[name] {
			o.log.Warn().Str("parameter", name).Msg("required body parameter missing")
			return false
		}
	}
	return true
}

func (o *Oracle) validateBodySchema(body any, schema *model.Schema) bool {
	if schema.PrimaryType() == model.TypeArray && schema.Items != nil && schema.Items.Ref != "" {
		name, err := DefinitionNameFromRef(schema.Items.Ref)
		if err != nil {
			o.log.Warn().Err(err).Msg("body schema item reference is unresolvable")
			return false
		}
		items, ok := toSlice(body)
		if !ok {
			o.log.Warn().Msg("body is not an array but the schema declares one")
			return false
		}
		if len(items) > 0 {
			first, ok := items[0].(map[string]any)
			if !ok || !o.ValidateDefinition(name, first) {
				o.log.Warn().Str("definition", name).Msg("body did not validate against its definition")
				return false
			}
		}
		return true
	}

	if schema.HasType() {
		if !o.CheckType(body, schema.PrimaryType()) {
			o.log.Warn().Str("type", schema.PrimaryType()).Msg("body failed its schema type check")
			return false
		}
		return true
	}

	name, err := DefinitionNameFromRef(schema.Ref)
	if err != nil {
		o.log.Warn().Err(err).Msg("body schema reference is unresolvable")
		return false
	}
	candidate, ok := body.(map[string]any)
	if !ok || !o.ValidateDefinition(name, candidate) {
		o.log.Warn().Str("definition", name).Msg("body did not validate against its definition")
		return false
	}
	return true
}

// validateQueryParameters checks every query key that the operation
// declares, then requires all required query parameters to be present.
// Undeclared query keys are ignored.
func (o *Oracle) validateQueryParameters(query map[string]any, opSpec *OperationSpec) bool {
	processed := make(map[string]bool)

	for name, value := range query {
		param, ok := opSpec.Parameters[name]
		if !ok {
			continue
		}
		processed[name] = true

		if param.Type == model.TypeArray {
			items, ok := toSlice(value)
			if !ok {
				o.log.Warn().Str("parameter", name).Msg("query parameter should be an array")
				return false
			}
			itemType := ""
			if param.Items != nil {
				itemType = param.Items.PrimaryType()
			}
			for _, item := range items {
				if !o.CheckType(item, itemType) {
					o.log.Warn().Str("parameter", name).Msg("query array element failed its type check")
					return false
				}
			}
		} else if !o.CheckType(value, param.Type) {
			o.log.Warn().Str("parameter", name).Msg("query parameter failed its type check")
			return false
		}
	}

	for name, param := range opSpec.Parameters {
		if param.In == model.InQuery && param.Required && !processed[name] {
			o.log.Warn().Str("parameter", name).Msg("required query parameter missing")
			return false
		}
	}
	return true
}

// CheckType reports whether a value inhabits a Swagger basic type.
// Unknown type names never validate.
func (o *Oracle) CheckType(value any, typeName string) bool {
	switch typeName {
	case model.TypeInteger:
		return isInteger(value)
	case model.TypeNumber:
		return isNumber(value)
	case model.TypeString:
		switch value.(type) {
		case string, time.Time:
			return true
		}
		return false
	case model.TypeBoolean:
		if _, ok := value.(bool); ok {
			return true
		}
		if s, ok := value.(string); ok {
			lower := strings.ToLower(s)
			return lower == "true" || lower == "false"
		}
		return false
	}
	return false
}

// isInteger accepts integral numeric values and numeric strings, never
// booleans.
func isInteger(value any) bool {
	switch v := value.(type) {
	case bool:
		return false
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(v) == math.Trunc(float64(v))
	case float64:
		return v == math.Trunc(v)
	case json.Number:
		_, err := strconv.ParseInt(v.String(), 10, 64)
		return err == nil
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return err == nil
	}
	return false
}

// isNumber accepts any numeric value, never booleans and never strings.
func isNumber(value any) bool {
	switch value.(type) {
	case bool:
		return false
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return true
	}
	return false
}

// ValidateDefinition checks a candidate map against a named definition:
// unknown names reject, all required keys must be present, and every
// non-nil candidate key must be a declared property of matching type
// (closed world; extra keys reject).
func (o *Oracle) ValidateDefinition(name string, candidate map[string]any) bool {
	def := o.spec.Definition(name)
	if def == nil {
		return false
	}
	return o.validateAgainstSchema(def, candidate)
}

func (o *Oracle) validateAgainstSchema(def *model.Schema, candidate map[string]any) bool {
	for _, required := range def.Required {
		if _, ok := candidate[required]; !ok {
			return false
		}
	}

	for key, value := range candidate {
		if value == nil {
			continue
		}
		prop := def.Property(key)
		if prop == nil {
			return false
		}
		if !o.validatePropertyValue(prop, value) {
			return false
		}
	}
	return true
}

func (o *Oracle) validatePropertyValue(prop *model.Schema, value any) bool {
	if !prop.HasType() {
		name, err := DefinitionNameFromRef(prop.Ref)
		if err != nil {
			o.log.Warn().Err(err).Msg("property reference is unresolvable")
			return false
		}
		nested, ok := value.(map[string]any)
		return ok && o.ValidateDefinition(name, nested)
	}

	if prop.PrimaryType() == model.TypeArray {
		items, ok := toSlice(value)
		if !ok {
			return false
		}
		switch {
		case prop.Items != nil && prop.Items.HasType():
			for _, item := range items {
				if !o.CheckType(item, prop.Items.PrimaryType()) {
					return false
				}
			}
		case prop.Items != nil && prop.Items.Ref != "":
			name, err := DefinitionNameFromRef(prop.Items.Ref)
			if err != nil {
				o.log.Warn().Err(err).Msg("array item reference is unresolvable")
				return false
			}
			for _, item := range items {
				nested, ok := item.(map[string]any)
				if !ok || !o.ValidateDefinition(name, nested) {
					return false
				}
			}
		}
		return true
	}

	return o.CheckType(value, prop.PrimaryType())
}

// DictDefinition returns the first definition (in document order) the
// candidate validates against.
func (o *Oracle) DictDefinition(candidate map[string]any) (string, bool) {
	for _, def := range o.spec.Definitions {
		if o.ValidateDefinition(def.Name, candidate) {
			return def.Name, true
		}
	}
	return "", false
}

// DictDefinitions returns every definition the candidate validates
// against, in document order.
func (o *Oracle) DictDefinitions(candidate map[string]any) []string {
	var matches []string
	for _, def := range o.spec.Definitions {
		if o.ValidateDefinition(def.Name, candidate) {
			matches = append(matches, def.Name)
		}
	}
	return matches
}

func findBodyParameter(parameters map[string]model.Parameter) *model.Parameter {
	for name := range parameters {
		param := parameters[name]
		if param.In == model.InBody {
			return &param
		}
	}
	return nil
}

// mimeAccepted reports whether any accepted MIME type mentions the
// given fragment ("text", "json").
func mimeAccepted(consumes []string, fragment string) bool {
	for _, mime := range consumes {
		if strings.Contains(mime, fragment) {
			return true
		}
	}
	return false
}

func isEmptyBody(body any) bool {
	if body == nil {
		return true
	}
	if s, ok := body.(string); ok {
		return s == ""
	}
	if m, ok := body.(map[string]any); ok {
		return len(m) == 0
	}
	return false
}

// toSlice views any slice value as []any; reflection keeps callers
// agnostic to whether values arrived as []any, []string or typed
// slices.
func toSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
