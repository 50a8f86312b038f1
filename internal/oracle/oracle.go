// Package oracle answers spec-driven questions about a parsed Swagger
// 2.0 document: what a representative value for a schema looks like,
// whether a request is acceptable for an operation, and which declared
// template a concrete request path belongs to.
package oracle

import (
	"github.com/rs/zerolog"

	"github.com/swagprobe/swagprobe/internal/model"
)

// Options configures oracle behavior.
type Options struct {
	// UseExamples makes literal example/x-example/default values win
	// over synthesized ones. Turning it off is useful in tests where a
	// document example for a string path parameter would collide with a
	// sentinel route segment.
	UseExamples bool

	// Logger receives diagnostic reasons for rejected requests and
	// degraded reference resolution.
	Logger zerolog.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		UseExamples: true,
		Logger:      zerolog.Nop(),
	}
}

// Oracle holds an immutable specification plus the derived data built
// at construction: the definition-example cache and the path table with
// its operation index. After New returns, nothing is mutated; an Oracle
// is safe for concurrent readers.
type Oracle struct {
	spec        *model.Specification
	useExamples bool
	log         zerolog.Logger

	// examples memoizes synthesized definition examples by name. An
	// entry is reserved before its definition is built so cyclic
	// reference graphs terminate.
	examples map[string]any
	building map[string]bool

	table      *pathTable
	operations map[string]OperationRef
	generated  map[string]OperationRef
}

// New derives the example cache and path table from the specification.
// Definition examples are built eagerly, best effort: definitions whose
// examples cannot be synthesized are simply absent from the cache.
func New(spec *model.Specification, opts *Options) *Oracle {
	if opts == nil {
		opts = DefaultOptions()
	}

	o := &Oracle{
		spec:        spec,
		useExamples: opts.UseExamples,
		log:         opts.Logger,
		examples:    make(map[string]any),
		building:    make(map[string]bool),
	}

	o.table, o.operations, o.generated = buildPathTable(spec, o.log)

	for _, def := range spec.Definitions {
		o.BuildDefinitionExample(def.Name)
	}

	return o
}

// Specification returns the underlying document model.
func (o *Oracle) Specification() *model.Specification {
	return o.spec
}

// DefinitionExamples returns a copy of the definition-example cache.
func (o *Oracle) DefinitionExamples() map[string]any {
	out := make(map[string]any, len(o.examples))
	for name, example := range o.examples {
		out[name] = example
	}
	return out
}

// DefinitionExample returns the cached example for a definition,
// building it on demand.
func (o *Oracle) DefinitionExample(name string) (any, bool) {
	if !o.BuildDefinitionExample(name) {
		return nil, false
	}
	return o.examples[name], true
}

// OperationByID looks up an operation by its operationId, falling back
// to the generated index for operations without one.
func (o *Oracle) OperationByID(id string) (OperationRef, bool) {
	if ref, ok := o.operations[id]; ok {
		return ref, true
	}
	ref, ok := o.generated[id]
	return ref, ok
}

// Operations returns a copy of the operationId index.
func (o *Oracle) Operations() map[string]OperationRef {
	out := make(map[string]OperationRef, len(o.operations))
	for id, ref := range o.operations {
		out[id] = ref
	}
	return out
}

// GeneratedOperations returns a copy of the index for operations that
// declare no operationId, keyed by their stable content hash.
func (o *Oracle) GeneratedOperations() map[string]OperationRef {
	out := make(map[string]OperationRef, len(o.generated))
	for id, ref := range o.generated {
		out[id] = ref
	}
	return out
}
