package codegen

import (
	"github.com/latchflow/latchc/internal/ir"
)

// Generator emits the Python source of one task implementation for a
// node. funcName is the sanitized activity function name chosen by the
// orchestration emitter.
type Generator interface {
	EmitTask(node *ir.Node, funcName string) (string, error)
}

// DefaultTriggerTypes is the closed set of node types that start a
// workflow run instead of emitting a task.
var DefaultTriggerTypes = []string{
	"manualTrigger",
	"webhook",
	"interval",
}

// Registry maps node type strings to generators. It is read-only after
// construction; concurrent exports share one registry safely.
type Registry struct {
	generators map[string]Generator
	fallback   Generator
	triggers   map[string]bool
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithTriggerTypes replaces the default trigger-type set.
func WithTriggerTypes(types ...string) Option {
	return func(r *Registry) {
		r.triggers = make(map[string]bool, len(types))
		for _, t := range types {
			r.triggers[t] = true
		}
	}
}

// WithGenerator registers (or overrides) a generator for a type.
func WithGenerator(nodeType string, g Generator) Option {
	return func(r *Registry) {
		r.generators[nodeType] = g
	}
}

// NewRegistry builds a registry with every built-in connector generator
// registered and the default trigger set installed.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		generators: make(map[string]Generator),
		fallback:   passthroughGenerator{},
		triggers:   make(map[string]bool, len(DefaultTriggerTypes)),
	}
	for _, t := range DefaultTriggerTypes {
		r.triggers[t] = true
	}

	r.generators["httpRequest"] = httpRequestGenerator{}
	r.generators["postgres"] = postgresGenerator{}
	r.generators["mysql"] = mysqlGenerator{}
	r.generators["oracle"] = oracleGenerator{}
	r.generators["cassandra"] = cassandraGenerator{}
	r.generators["snowflake"] = snowflakeGenerator{}
	r.generators["redis"] = redisGenerator{}
	r.generators["mongodb"] = mongoGenerator{}
	r.generators["emailSend"] = emailGenerator{}
	r.generators["set"] = setGenerator{}
	r.generators["code"] = codeGenerator{}
	r.generators["if"] = ifGenerator{}
	r.generators["wait"] = waitGenerator{}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Generator returns the generator for a node type. Unrecognized types
// get the passthrough fallback, so lookup is total.
func (r *Registry) Generator(nodeType string) Generator {
	if g, ok := r.generators[nodeType]; ok {
		return g
	}
	return r.fallback
}

// Known reports whether the type has a dedicated generator.
func (r *Registry) Known(nodeType string) bool {
	_, ok := r.generators[nodeType]
	return ok
}

// IsTrigger classifies a node type against the trigger set. Triggers
// start the workflow and never emit a task invocation.
func (r *Registry) IsTrigger(nodeType string) bool {
	return r.triggers[nodeType]
}

// Activities filters the workflow's nodes to the activity subset,
// preserving node-list order.
func (r *Registry) Activities(w *ir.Workflow) []ir.Node {
	out := make([]ir.Node, 0, len(w.Nodes))
	for _, n := range w.Nodes {
		if !r.IsTrigger(n.Type) {
			out = append(out, n)
		}
	}
	return out
}
