package oracle

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/swagprobe/swagprobe/internal/model"
)

// OperationRef locates one operation: its full path template, verb and
// grouping tag (the operation's first tag, or empty).
type OperationRef struct {
	Path   string
	Method string
	Tag    string
}

// OperationSpec is the flattened view of one operation the validator
// works against: merged parameters keyed by name, declared responses
// and accepted MIME types.
type OperationSpec struct {
	Path       string
	Method     string
	Parameters map[string]model.Parameter
	Responses  []model.Response
	Consumes   []string
}

// PathSpec is one path template with its operations keyed by verb.
type PathSpec struct {
	Template   string
	Operations map[string]*OperationSpec
}

type pathEntry struct {
	spec    *PathSpec
	matcher *regexp.Regexp
}

// pathTable keeps entries in document order; wildcard matching walks
// them in that order, so overlapping templates resolve to whichever
// was declared first.
type pathTable struct {
	entries    []*pathEntry
	byTemplate map[string]*pathEntry
}

var placeholderPattern = regexp.MustCompile(`\{[^/}]*\}`)

// buildPathTable derives the path table and both operation indexes from
// the specification in a single pass. Path templates are prefixed with
// basePath exactly once; path-level parameters are merged under
// operation-level ones (operation wins on name collision); parameters
// given as $ref are expanded from the global parameters section.
func buildPathTable(spec *model.Specification, log zerolog.Logger) (*pathTable, map[string]OperationRef, map[string]OperationRef) {
	table := &pathTable{
		byTemplate: make(map[string]*pathEntry),
	}
	operations := make(map[string]OperationRef)
	generated := make(map[string]OperationRef)

	for _, item := range spec.Paths {
		template := spec.BasePath + item.Template

		defaults := make(map[string]model.Parameter)
		mergeParameters(spec, defaults, item.Parameters, log)

		pathSpec := &PathSpec{
			Template:   template,
			Operations: make(map[string]*OperationSpec),
		}

		for i := range item.Operations {
			op := &item.Operations[i]

			parameters := make(map[string]model.Parameter, len(defaults)+len(op.Parameters))
			for name, p := range defaults {
				parameters[name] = p
			}
			mergeParameters(spec, parameters, op.Parameters, log)

			pathSpec.Operations[op.Method] = &OperationSpec{
				Path:       template,
				Method:     op.Method,
				Parameters: parameters,
				Responses:  op.Responses,
				Consumes:   op.Consumes,
			}

			ref := OperationRef{Path: template, Method: op.Method, Tag: op.FirstTag()}
			if op.ID != "" {
				operations[op.ID] = ref
			} else {
				generated[operationHash(op.Method, template)] = ref
			}
		}

		entry := &pathEntry{
			spec:    pathSpec,
			matcher: templateMatcher(template),
		}
		table.entries = append(table.entries, entry)
		table.byTemplate[template] = entry
	}

	return table, operations, generated
}

// mergeParameters copies parameters into the map by name, expanding
// $ref entries from the global parameters section. Unresolvable refs
// are skipped with a warning rather than poisoning the whole table.
func mergeParameters(spec *model.Specification, into map[string]model.Parameter, params []model.Parameter, log zerolog.Logger) {
	for _, param := range params {
		if param.Ref != "" {
			name := param.Ref[strings.LastIndex(param.Ref, "/")+1:]
			resolved := spec.GlobalParameter(name)
			if resolved == nil {
				log.Warn().Str("ref", param.Ref).Msg("parameter reference does not resolve")
				continue
			}
			param = *resolved
		}
		into[param.Name] = param
	}
}

// operationHash gives operations without an operationId a stable
// address: sha256 over "<verb>|<path>".
func operationHash(method, path string) string {
	sum := sha256.Sum256([]byte(method + "|" + path))
	return hex.EncodeToString(sum[:])
}

// templateMatcher compiles a path template into an anchored regexp
// with every {name} placeholder widened to a single-segment wildcard.
func templateMatcher(template string) *regexp.Regexp {
	var pattern strings.Builder
	pattern.WriteString("^")

	rest := template
	for {
		loc := placeholderPattern.FindStringIndex(rest)
		if loc == nil {
			pattern.WriteString(regexp.QuoteMeta(rest))
			break
		}
		pattern.WriteString(regexp.QuoteMeta(rest[:loc[0]]))
		pattern.WriteString(`[^/]*`)
		rest = rest[loc[1]:]
	}

	pattern.WriteString("$")
	return regexp.MustCompile(pattern.String())
}
