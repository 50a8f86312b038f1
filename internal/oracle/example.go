package oracle

import (
	"slices"

	"github.com/swagprobe/swagprobe/internal/model"
)

// Placeholder property names injected when a schema declares
// additionalProperties, so map-shaped examples reuse the ordinary
// object machinery. The names are part of the public contract.
const (
	PlaceholderProperty1 = "any_prop1"
	PlaceholderProperty2 = "any_prop2"
)

// DateTimeExample is the fixed sentinel returned for date-time values.
const DateTimeExample = "2015-08-28T09:02:57.481Z"

// FileExample is the sentinel value synthesized for file-typed schemas.
type FileExample struct {
	Filename string
	Content  []byte
}

func newFileExample() FileExample {
	return FileExample{
		Filename: "hello world.txt",
		Content:  []byte("my file contents"),
	}
}

// basicExamples returns two distinct representative values for a basic
// type. The second value is used when synthesizing two-element arrays.
func basicExamples(typeName string) ([2]any, bool) {
	switch typeName {
	case model.TypeInteger:
		return [2]any{42, 24}, true
	case model.TypeNumber:
		return [2]any{5.5, 5.5}, true
	case model.TypeString:
		return [2]any{"string", "string2"}, true
	case model.TypeBoolean:
		return [2]any{false, true}, true
	case model.TypeNull:
		return [2]any{"null", "null"}, true
	}
	return [2]any{}, false
}

// ExampleFor synthesizes a representative value for a schema node.
// Resolution priority: literal example (when enabled), enum, $ref,
// typeless implicit schemas, object, array, file, date-time, basic
// type. The boolean is false when no example can be produced.
func (o *Oracle) ExampleFor(schema *model.Schema) (any, bool) {
	if schema == nil {
		return nil, false
	}

	if o.useExamples {
		if literal, ok := schema.LiteralValue(); ok {
			return literal, true
		}
	}

	if len(schema.Enum) > 0 {
		return schema.Enum[0], true
	}

	if schema.Ref != "" {
		return o.exampleFromRef(schema.Ref)
	}

	if !schema.HasType() {
		return o.exampleFromImplicit(schema)
	}

	switch schema.PrimaryType() {
	case model.TypeObject:
		return o.exampleFromObject(schema)
	case model.TypeArray:
		return o.exampleFromArray(schema)
	case model.TypeFile:
		return newFileExample(), true
	}

	if schema.Format == "date-time" {
		return DateTimeExample, true
	}

	if pair, ok := basicExamples(schema.PrimaryType()); ok {
		return pair[0], true
	}

	o.log.Warn().Str("type", schema.PrimaryType()).Msg("no example for unknown basic type")
	return nil, false
}

// exampleFromRef resolves a definition reference and returns its cached
// example. Map examples are shallow-copied so callers cannot mutate the
// cache; definitions that reduced to a scalar come back unwrapped.
func (o *Oracle) exampleFromRef(ref string) (any, bool) {
	name, err := DefinitionNameFromRef(ref)
	if err != nil {
		o.log.Warn().Err(err).Msg("example synthesis hit an unresolvable reference")
		return nil, false
	}
	if !o.BuildDefinitionExample(name) {
		return nil, false
	}

	if m, ok := o.examples[name].(map[string]any); ok {
		return copyValueMap(m), true
	}
	return o.examples[name], true
}

// exampleFromImplicit handles schema nodes without a type key: body
// wrappers and other partially-specified objects.
func (o *Oracle) exampleFromImplicit(schema *model.Schema) (any, bool) {
	if len(schema.Properties) > 0 || schema.AdditionalProperties != nil || schema.AdditionalAllowed {
		return o.exampleFromObject(schema)
	}
	if schema.Items != nil || len(schema.ItemsList) > 0 {
		return o.exampleFromArray(schema)
	}
	return map[string]any{}, true
}

// exampleFromObject synthesizes a minimal valid instance: only
// properties in the required set (all declared properties when the
// schema has no required list). additionalProperties contributes two
// placeholder properties, both required, each shaped by the
// additionalProperties schema.
func (o *Oracle) exampleFromObject(schema *model.Schema) (any, bool) {
	properties := make([]model.Property, 0, len(schema.Properties)+2)
	properties = append(properties, schema.Properties...)
	required := schema.Required

	if schema.AdditionalProperties != nil || schema.AdditionalAllowed {
		extra := schema.AdditionalProperties
		if extra == nil {
			extra = &model.Schema{}
		}
		properties = append(properties,
			model.Property{Name: PlaceholderProperty1, Schema: extra},
			model.Property{Name: PlaceholderProperty2, Schema: extra},
		)
		// Once placeholders join, the required set is always explicit.
		required = append(append([]string{}, schema.Required...),
			PlaceholderProperty1, PlaceholderProperty2)
	}

	example := make(map[string]any, len(properties))
	for _, prop := range properties {
		if len(required) > 0 && !slices.Contains(required, prop.Name) {
			continue
		}
		value, ok := o.ExampleFor(prop.Schema)
		if !ok {
			return nil, false
		}
		example[prop.Name] = value
	}
	return example, true
}

// exampleFromArray synthesizes array examples per item shape: tuple
// items position by position, basic item types as a two-element array,
// referenced definitions as a one-element array (unwrapping
// single-property definitions to their lone value), and inline object
// items as a one-element array.
func (o *Oracle) exampleFromArray(schema *model.Schema) (any, bool) {
	if len(schema.ItemsList) > 0 {
		example := make([]any, 0, len(schema.ItemsList))
		for _, item := range schema.ItemsList {
			value, ok := o.ExampleFor(item)
			if !ok {
				return nil, false
			}
			example = append(example, value)
		}
		return example, true
	}

	items := schema.Items
	if items == nil {
		return []any{}, true
	}

	if items.HasType() {
		if items.Format == "date-time" {
			return []any{DateTimeExample, DateTimeExample}, true
		}
		if pair, ok := basicExamples(items.PrimaryType()); ok {
			return []any{pair[0], pair[1]}, true
		}
	}

	if items.Ref != "" {
		name, err := DefinitionNameFromRef(items.Ref)
		if err != nil {
			o.log.Warn().Err(err).Msg("array item reference is unresolvable")
			return nil, false
		}
		if !o.BuildDefinitionExample(name) {
			return nil, false
		}
		value := o.examples[name]
		m, ok := value.(map[string]any)
		if !ok {
			return []any{value}, true
		}
		if len(m) == 1 {
			for _, single := range m {
				return []any{single}, true
			}
		}
		return []any{copyValueMap(m)}, true
	}

	if len(items.Properties) > 0 {
		element := make(map[string]any, len(items.Properties))
		for _, prop := range items.Properties {
			if value, ok := o.ExampleFor(prop.Schema); ok {
				element[prop.Name] = value
			}
		}
		return []any{element}, true
	}

	return nil, false
}

// BuildDefinitionExample synthesizes and caches the example for a named
// definition. It reports true when an example is cached (including
// already-built ones) and false for unknown names or definitions whose
// example cannot be completed; failures leave no cache entry behind.
//
// The cache entry is reserved before any recursion so that cyclic
// definition graphs terminate: a re-entrant reference sees the entry
// and short-circuits. Such a reference necessarily reads an incomplete
// example, which is surfaced as a warning rather than hidden.
func (o *Oracle) BuildDefinitionExample(name string) bool {
	if _, ok := o.examples[name]; ok {
		if o.building[name] {
			o.log.Warn().Str("definition", name).
				Msg("cyclic reference reads an incomplete definition example")
		}
		return true
	}

	def := o.spec.Definition(name)
	if def == nil {
		return false
	}

	placeholder := make(map[string]any)
	o.examples[name] = placeholder
	o.building[name] = true
	defer delete(o.building, name)

	if def.PrimaryType() == model.TypeArray && def.Items != nil {
		item, ok := o.ExampleFor(def.Items)
		if !ok {
			delete(o.examples, name)
			return false
		}
		o.examples[name] = []any{item}
		return true
	}

	if len(def.Properties) == 0 {
		value, ok := o.ExampleFor(def)
		if !ok {
			delete(o.examples, name)
			return false
		}
		o.examples[name] = value
		return true
	}

	// Properties fill the reserved map in place so cyclic references
	// observe the partial entry instead of recursing forever. Any
	// property failure discards the whole entry: half-built examples
	// must never look complete.
	for _, prop := range def.Properties {
		value, ok := o.ExampleFor(prop.Schema)
		if !ok {
			delete(o.examples, name)
			return false
		}
		placeholder[prop.Name] = value
	}
	return true
}

func copyValueMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
