package model

// Specification is the root of a parsed Swagger 2.0 document.
// It is built once by the loader and read-only afterwards.
type Specification struct {
	Swagger  string
	Info     Info
	Host     string
	BasePath string
	Schemes  []string
	Consumes []string
	Produces []string

	// Definitions and Parameters keep document order so derived data
	// (example cache, definition scans) is deterministic.
	Definitions []Definition
	Parameters  []NamedParameter
	Paths       []PathItem
	Tags        []Tag
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Tag struct {
	Name        string
	Description string
}

// Definition is a named, reusable schema under "definitions".
type Definition struct {
	Name   string
	Schema *Schema
}

// NamedParameter is a reusable parameter under the global "parameters"
// section, addressable via "#/parameters/<name>".
type NamedParameter struct {
	Name      string
	Parameter Parameter
}

// Definition returns the schema registered under the given name,
// or nil if the name is unknown.
func (s *Specification) Definition(name string) *Schema {
	for i := range s.Definitions {
		if s.Definitions[i].Name == name {
			return s.Definitions[i].Schema
		}
	}
	return nil
}

// HasDefinition reports whether a definition with the given name exists.
func (s *Specification) HasDefinition(name string) bool {
	return s.Definition(name) != nil
}

// GlobalParameter returns the reusable parameter registered under the
// given name, or nil if the name is unknown.
func (s *Specification) GlobalParameter(name string) *Parameter {
	for i := range s.Parameters {
		if s.Parameters[i].Name == name {
			return &s.Parameters[i].Parameter
		}
	}
	return nil
}
