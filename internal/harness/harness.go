package harness

import (
	"fmt"

	"github.com/latchflow/latchc/internal/codegen"
	"github.com/latchflow/latchc/internal/export"
	"github.com/latchflow/latchc/internal/ir"
	"github.com/latchflow/latchc/internal/serialize"
)

// Scenario is one end-to-end export case: a named persisted workflow
// document in JSON form.
type Scenario struct {
	Name   string
	Record []byte
}

// Result is the outcome of running a scenario.
type Result struct {
	Workflow *ir.Workflow
	Files    map[string]string
	Digest   string
}

// Run decodes the scenario's record, lowers it to IR, and exports the
// complete artifact set.
func Run(s *Scenario) (*Result, error) {
	rec, err := serialize.DecodeJSON(s.Record)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: decode record: %w", s.Name, err)
	}
	w, err := serialize.ToIR(rec)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: lower to IR: %w", s.Name, err)
	}

	files, err := export.Workflow(codegen.NewRegistry(), w)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: export: %w", s.Name, err)
	}
	digest, err := export.Digest(files)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: digest: %w", s.Name, err)
	}

	return &Result{Workflow: w, Files: files, Digest: digest}, nil
}

// RunIR exports an already-constructed IR, skipping the persisted-form
// decode. Useful for tests that build workflows programmatically.
func RunIR(name string, w *ir.Workflow) (*Result, error) {
	files, err := export.Workflow(codegen.NewRegistry(), w)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: export: %w", name, err)
	}
	digest, err := export.Digest(files)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: digest: %w", name, err)
	}
	return &Result{Workflow: w, Files: files, Digest: digest}, nil
}
