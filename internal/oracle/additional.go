package oracle

import (
	"errors"
	"fmt"
	"time"

	"github.com/swagprobe/swagprobe/internal/model"
)

// ValidateAdditionalProperties checks a map of actual additional
// properties against an exemplar map taken from a synthesized example.
// The exemplar's values decide the shape: scalar exemplars require every
// actual value to share the scalar kind, map exemplars require every
// actual value to validate against the definition the exemplar
// describes. Array-valued exemplars are not supported.
func (o *Oracle) ValidateAdditionalProperties(expected, actual map[string]any) (bool, error) {
	if len(expected) == 0 {
		return false, errors.New("exemplar map has no entries to derive a shape from")
	}

	var exemplar any
	for _, v := range expected {
		exemplar = v
		break
	}

	switch sample := exemplar.(type) {
	case map[string]any:
		return o.validateAdditionalMaps(sample, actual)

	case []any:
		return false, fmt.Errorf("array-valued additional properties: %w", ErrNotImplemented)

	default:
		kind, ok := scalarKind(sample)
		if !ok {
			return false, fmt.Errorf("additional properties of type %T: %w", sample, ErrNotImplemented)
		}
		for _, v := range expected {
			if k, ok := scalarKind(v); !ok || k != kind {
				return false, nil
			}
		}
		for _, v := range actual {
			if k, ok := scalarKind(v); !ok || k != kind {
				return false, nil
			}
		}
		return true, nil
	}
}

// validateAdditionalMaps validates every actual value against the
// definition the exemplar map matches. When no declared definition
// matches, a schema is derived from the exemplar's own scalar values.
func (o *Oracle) validateAdditionalMaps(sample, actual map[string]any) (bool, error) {
	if name, ok := o.DictDefinition(sample); ok {
		for _, v := range actual {
			nested, ok := v.(map[string]any)
			if !ok || !o.ValidateDefinition(name, nested) {
				return false, nil
			}
		}
		return true, nil
	}

	derived, err := definitionFromExample(sample)
	if err != nil {
		return false, err
	}
	for _, v := range actual {
		nested, ok := v.(map[string]any)
		if !ok || !o.validateAgainstSchema(derived, nested) {
			return false, nil
		}
	}
	return true, nil
}

// definitionFromExample derives a flat object schema from an example
// map: each key becomes a property typed by its value's scalar kind.
func definitionFromExample(example map[string]any) (*model.Schema, error) {
	schema := &model.Schema{
		Types:      []string{model.TypeObject},
		Properties: make([]model.Property, 0, len(example)),
	}
	for key, value := range example {
		kind, ok := scalarKind(value)
		if !ok {
			return nil, fmt.Errorf("deriving a schema from non-scalar example value %T: %w", value, ErrNotImplemented)
		}
		schema.Properties = append(schema.Properties, model.Property{
			Name:   key,
			Schema: &model.Schema{Types: []string{kind}},
		})
	}
	return schema, nil
}

// scalarKind classifies a value into a Swagger basic type name.
func scalarKind(value any) (string, bool) {
	switch v := value.(type) {
	case bool:
		return model.TypeBoolean, true
	case string, time.Time:
		return model.TypeString, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return model.TypeInteger, true
	case float32:
		if isInteger(v) {
			return model.TypeInteger, true
		}
		return model.TypeNumber, true
	case float64:
		if isInteger(v) {
			return model.TypeInteger, true
		}
		return model.TypeNumber, true
	}
	return "", false
}
