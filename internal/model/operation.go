package model

// PathItem is one path template with its operations. Path-level
// parameters apply to every operation unless overridden by name.
type PathItem struct {
	Template   string
	Parameters []Parameter
	Operations []Operation
}

type Operation struct {
	ID          string
	Method      string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	Responses   []Response
	Consumes    []string
	Produces    []string
	Deprecated  bool
}

// The closed set of HTTP verbs a PathItem may carry. Unknown keys under
// a path are ignored by the loader, never an error.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// Methods lists the supported verbs in their canonical order.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
}

// Parameter locations.
const (
	InPath     = "path"
	InQuery    = "query"
	InBody     = "body"
	InHeader   = "header"
	InFormData = "formData"
)

// Parameter describes one operation input. Body parameters carry a
// Schema; all other locations use the inline Type/Format/Items form.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool

	// Non-body form.
	Type             string
	Format           string
	Pattern          string
	Items            *Schema
	CollectionFormat string
	Default          any
	Enum             []any

	// Body form.
	Schema *Schema

	// Ref is set when the parameter was given as "$ref" and could not
	// be expanded; the path table builder resolves these.
	Ref string
}

// FirstTag returns the operation's grouping tag: the first declared tag
// or "" when the operation has none.
func (o *Operation) FirstTag() string {
	if len(o.Tags) == 0 {
		return ""
	}
	return o.Tags[0]
}

type Response struct {
	// StatusCode is the raw responses key: a numeric code or "default".
	StatusCode  string
	Description string
	Schema      *Schema
}
