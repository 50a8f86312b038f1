package loader

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/pb33f/libopenapi"

	"github.com/swagprobe/swagprobe/internal/model"
)

// Options controls how a document is loaded.
type Options struct {
	// Vars enables a template pass over the raw document before
	// parsing. When empty the document is parsed as-is.
	Vars map[string]any

	// SkipValidation disables the one-time structural check against the
	// Swagger 2.0 meta-schema.
	SkipValidation bool
}

// Result is a fully-loaded, validated specification.
type Result struct {
	Specification *model.Specification
	Version       string
	Warnings      []string
	RawData       []byte
}

// Load reads, renders, parses and validates the Swagger 2.0 document at
// the given path. Any failure is fatal; no partial specification is
// returned.
func Load(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	result, err := LoadBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid swagger 2.0 document: %w", path, err)
	}
	return result, nil
}

// LoadBytes parses and validates an in-memory Swagger 2.0 document.
func LoadBytes(data []byte, opts Options) (*Result, error) {
	data, err := render(data, opts.Vars)
	if err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		if err := ValidateDocument(data); err != nil {
			return nil, err
		}
	}

	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing swagger document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "2") {
		return nil, fmt.Errorf("unsupported swagger version: %s (only 2.0 supported)", version)
	}

	docModel, err := doc.BuildV2Model()
	if err != nil {
		return nil, fmt.Errorf("building swagger model: %w", err)
	}

	spec, err := Transform(&docModel.Model)
	if err != nil {
		return nil, fmt.Errorf("transforming swagger model: %w", err)
	}

	result := &Result{
		Specification: spec,
		Version:       version,
		RawData:       data,
	}

	if len(spec.Definitions) == 0 {
		result.Warnings = append(result.Warnings, "document declares no definitions; example synthesis limited to inline schemas")
	}

	return result, nil
}

// render substitutes template variables in the raw document. Documents
// without variables skip the pass entirely so literal braces survive.
func render(data []byte, vars map[string]any) ([]byte, error) {
	if len(vars) == 0 {
		return data, nil
	}

	tmpl, err := template.New("spec").Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing spec template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("rendering spec template: %w", err)
	}
	return buf.Bytes(), nil
}
