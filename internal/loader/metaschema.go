package loader

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v4"
)

// Trimmed copy of the Swagger 2.0 meta-schema covering the structural
// core: root keys, paths/definitions/parameters section shapes and the
// closed verb set. Constraint keywords the oracle never reads are left
// unconstrained.
//
//go:embed swagger20.schema.json
var metaSchemaJSON []byte

var compileMetaSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(metaSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decoding embedded meta-schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft4)
	if err := compiler.AddResource("swagger20.schema.json", doc); err != nil {
		return nil, fmt.Errorf("registering meta-schema: %w", err)
	}

	schema, err := compiler.Compile("swagger20.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling meta-schema: %w", err)
	}
	return schema, nil
})

// ValidateDocument checks the raw YAML/JSON document against the
// Swagger 2.0 meta-schema. A nil error means the document is
// structurally sound; it says nothing about reference integrity.
func ValidateDocument(data []byte) error {
	schema, err := compileMetaSchema()
	if err != nil {
		return err
	}

	var instance any
	if err := yaml.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("document failed swagger 2.0 structural validation: %w", err)
	}
	return nil
}
