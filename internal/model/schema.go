package model

// Schema describes the shape of a value: a definition body, a property,
// an array item spec, or an inline body schema. Schemas form a graph,
// not a tree; two definitions may reference each other cyclically, so
// consumers must not walk Ref edges without a termination guard.
//
// Which fields are populated decides how a node is interpreted; the
// priority order lives in the oracle's example synthesizer, not here.
type Schema struct {
	Name        string
	Description string

	// Types holds the "type" key. Swagger 2.0 allows a bare string, but
	// legacy documents use the JSON-Schema list form; position 0 wins.
	Types  []string
	Format string

	Properties []Property
	Required   []string

	// Items is the single-schema form of "items". ItemsList is the
	// tuple form, each position typed individually.
	Items     *Schema
	ItemsList []*Schema

	// AdditionalProperties is the schema form. AdditionalAllowed covers
	// the bare boolean form (additionalProperties: true).
	AdditionalProperties *Schema
	AdditionalAllowed    bool

	Enum []any

	Example  any
	XExample any
	Default  any

	Ref string
}

type Property struct {
	Name   string
	Schema *Schema
}

// Swagger 2.0 primitive and structural type names.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeFile    = "file"
	TypeNull    = "null"
)

// PrimaryType returns the effective type of the schema: the first entry
// of the type list, or "" when no type key is present.
func (s *Schema) PrimaryType() string {
	if s == nil || len(s.Types) == 0 {
		return ""
	}
	return s.Types[0]
}

// HasType reports whether a "type" key was present at all.
func (s *Schema) HasType() bool {
	return s != nil && len(s.Types) > 0
}

// Property returns the schema of the named property, or nil.
func (s *Schema) Property(name string) *Schema {
	if s == nil {
		return nil
	}
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return s.Properties[i].Schema
		}
	}
	return nil
}

// IsRequired reports whether the named property appears in the
// schema's required list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// LiteralValue returns the example, x-example or default literal carried
// by the schema, in that priority order. The boolean reports presence.
func (s *Schema) LiteralValue() (any, bool) {
	if s == nil {
		return nil, false
	}
	if s.Example != nil {
		return s.Example, true
	}
	if s.XExample != nil {
		return s.XExample, true
	}
	if s.Default != nil {
		return s.Default, true
	}
	return nil, false
}
