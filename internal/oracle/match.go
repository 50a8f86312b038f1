package oracle

import "strings"

// MatchPath maps a concrete request path to its declared template:
// exact match first, then single-segment wildcard matching in document
// order.
func (o *Oracle) MatchPath(path string) (*PathSpec, bool) {
	if entry, ok := o.table.byTemplate[path]; ok {
		return entry.spec, true
	}
	for _, entry := range o.table.entries {
		if entry.matcher.MatchString(path) {
			return entry.spec, true
		}
	}
	return nil, false
}

// OperationSpec resolves a request path and verb to the matched
// operation. A path that matches a template lacking the verb is no
// match at all.
func (o *Oracle) OperationSpec(path, method string) (*OperationSpec, bool) {
	pathSpec, ok := o.MatchPath(path)
	if !ok {
		return nil, false
	}
	op, ok := pathSpec.Operations[strings.ToLower(method)]
	if !ok {
		return nil, false
	}
	return op, true
}
