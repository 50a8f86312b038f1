package oracle

import "strings"

const (
	definitionRefPrefix = "#/definitions/"
	parameterRefPrefix  = "#/parameters/"
)

// DefinitionNameFromRef extracts the definition name from a
// "#/definitions/<name>" pointer. Anything else is a ResolutionError;
// the historical behavior of passing unknown refs through unchanged hid
// broken documents from callers.
func DefinitionNameFromRef(ref string) (string, error) {
	name, ok := strings.CutPrefix(ref, definitionRefPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", &ResolutionError{Ref: ref}
	}
	return name, nil
}

// ParameterNameFromRef extracts the parameter name from a
// "#/parameters/<name>" pointer.
func ParameterNameFromRef(ref string) (string, error) {
	name, ok := strings.CutPrefix(ref, parameterRefPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", &ResolutionError{Ref: ref}
	}
	return name, nil
}
