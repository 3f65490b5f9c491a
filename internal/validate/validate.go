// Package validate checks a workflow IR before it reaches the code
// generators. Validation is a hard gate: the export orchestrator refuses
// to emit anything for an IR that fails here, and surfaces the coded
// errors unchanged.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/latchflow/latchc/internal/ir"
)

// Validation error codes (E100-E199).
const (
	ErrUnsupportedVersion = "E100" // IR schema version outside supported range
	ErrWorkflowNameEmpty  = "E101" // workflow name is required
	ErrNoNodes            = "E102" // at least one node required
	ErrDuplicateNodeID    = "E103" // node ids must be unique
	ErrNodeIDEmpty        = "E104" // node id is required
	ErrNodeTypeEmpty      = "E105" // node type is required
	ErrUnknownConnection  = "E106" // connection references missing node id
	ErrInvalidRetryPolicy = "E107" // retry policy field out of range
	ErrInvalidTimeout     = "E108" // negative timeout
	ErrSchemaShape        = "E109" // IR does not unify with the schema
)

// ValidationError is one coded validation finding.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Result is the validation verdict for one IR value.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// InvalidWorkflowError aggregates validation findings for callers that
// need a single error value.
type InvalidWorkflowError struct {
	Errors []ValidationError
}

func (e *InvalidWorkflowError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("workflow validation failed: %s", e.Errors[0].Error())
	}
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("workflow validation failed with %d errors: %s",
		len(e.Errors), strings.Join(msgs, "; "))
}

// Validate runs all checks and returns every error found; it does not
// fail fast. Shape errors from the CUE gate come first, then rule
// checks.
func Validate(w *ir.Workflow) Result {
	if w == nil {
		return Result{Errors: []ValidationError{{
			Field:   "workflow",
			Message: "workflow IR is nil",
			Code:    ErrSchemaShape,
		}}}
	}

	errs := validateShape(w)
	errs = append(errs, validateRules(w)...)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Assert is the throwing form of Validate.
func Assert(w *ir.Workflow) error {
	result := Validate(w)
	if result.Valid {
		return nil
	}
	return &InvalidWorkflowError{Errors: result.Errors}
}

// validateShape unifies the IR's JSON form with the embedded CUE schema.
// JSON is a subset of CUE, so the serialized IR compiles directly.
func validateShape(w *ir.Workflow) []ValidationError {
	data, err := json.Marshal(w)
	if err != nil {
		return []ValidationError{{
			Field:   "workflow",
			Message: fmt.Sprintf("cannot serialize IR for shape check: %v", err),
			Code:    ErrSchemaShape,
		}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(workflowSchema)
	def := schema.LookupPath(cue.ParsePath("#Workflow"))
	if def.Err() != nil {
		return []ValidationError{{
			Field:   "schema",
			Message: fmt.Sprintf("internal schema error: %v", def.Err()),
			Code:    ErrSchemaShape,
		}}
	}

	value := ctx.CompileBytes(data)
	unified := def.Unify(value)
	if err := unified.Validate(); err != nil {
		var errs []ValidationError
		for _, e := range cueerrors.Errors(err) {
			path := strings.Join(e.Path(), ".")
			if path == "" {
				path = "workflow"
			}
			errs = append(errs, ValidationError{
				Field:   path,
				Message: e.Error(),
				Code:    ErrSchemaShape,
			})
		}
		return errs
	}
	return nil
}

// validateRules runs the semantic checks the compiler relies on: version
// pin, unique node ids, resolvable connections, sane policy values.
func validateRules(w *ir.Workflow) []ValidationError {
	var errs []ValidationError

	if !ir.SupportedVersions[w.Version] {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported IR version %q", w.Version),
			Code:    ErrUnsupportedVersion,
		})
	}

	if strings.TrimSpace(w.Workflow.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "workflow.name",
			Message: "workflow name is required and must be non-empty",
			Code:    ErrWorkflowNameEmpty,
		})
	}

	if len(w.Nodes) == 0 {
		errs = append(errs, ValidationError{
			Field:   "nodes",
			Message: "at least one node is required",
			Code:    ErrNoNodes,
		})
	}

	seen := make(map[string]bool, len(w.Nodes))
	for i, node := range w.Nodes {
		if strings.TrimSpace(node.ID) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("nodes[%d].id", i),
				Message: "node id is required",
				Code:    ErrNodeIDEmpty,
			})
			continue
		}
		if seen[node.ID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("nodes[%d].id", i),
				Message: fmt.Sprintf("duplicate node id: %q", node.ID),
				Code:    ErrDuplicateNodeID,
			})
		}
		seen[node.ID] = true

		if strings.TrimSpace(node.Type) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("nodes[%d].type", i),
				Message: fmt.Sprintf("node %q has no type", node.ID),
				Code:    ErrNodeTypeEmpty,
			})
		}

		errs = append(errs, validateOptions(&node, i)...)
	}

	for i, conn := range w.Connections {
		if !seen[conn.Source] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("connections[%d].source", i),
				Message: fmt.Sprintf("connection source %q does not match any node id", conn.Source),
				Code:    ErrUnknownConnection,
			})
		}
		if !seen[conn.Target] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("connections[%d].target", i),
				Message: fmt.Sprintf("connection target %q does not match any node id", conn.Target),
				Code:    ErrUnknownConnection,
			})
		}
	}

	if w.Workflow.RetryPolicy != nil {
		errs = append(errs, validateRetryPolicy(w.Workflow.RetryPolicy, "workflow.retry_policy")...)
	}

	return errs
}

func validateOptions(node *ir.Node, idx int) []ValidationError {
	opts := node.ActivityOptions
	if opts == nil {
		return nil
	}

	var errs []ValidationError
	field := func(name string) string {
		return fmt.Sprintf("nodes[%d].activity_options.%s", idx, name)
	}

	if opts.StartToCloseTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   field("start_to_close_timeout"),
			Message: "timeout must not be negative",
			Code:    ErrInvalidTimeout,
		})
	}
	if opts.ScheduleToCloseTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   field("schedule_to_close_timeout"),
			Message: "timeout must not be negative",
			Code:    ErrInvalidTimeout,
		})
	}
	if opts.HeartbeatTimeout < 0 {
		errs = append(errs, ValidationError{
			Field:   field("heartbeat_timeout"),
			Message: "timeout must not be negative",
			Code:    ErrInvalidTimeout,
		})
	}
	if opts.RetryPolicy != nil {
		errs = append(errs, validateRetryPolicy(opts.RetryPolicy, field("retry_policy"))...)
	}
	return errs
}

func validateRetryPolicy(rp *ir.RetryPolicy, field string) []ValidationError {
	var errs []ValidationError

	if rp.MaxAttempts < 0 {
		errs = append(errs, ValidationError{
			Field:   field + ".max_attempts",
			Message: "max attempts must not be negative",
			Code:    ErrInvalidRetryPolicy,
		})
	}
	if rp.BackoffCoefficient != 0 && rp.BackoffCoefficient < 1 {
		errs = append(errs, ValidationError{
			Field:   field + ".backoff_coefficient",
			Message: fmt.Sprintf("backoff coefficient %v must be >= 1", rp.BackoffCoefficient),
			Code:    ErrInvalidRetryPolicy,
		})
	}
	if rp.InitialInterval != "" {
		if d, err := time.ParseDuration(rp.InitialInterval); err != nil || d < 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".initial_interval",
				Message: fmt.Sprintf("initial interval %q is not a valid duration", rp.InitialInterval),
				Code:    ErrInvalidRetryPolicy,
			})
		}
	}
	return errs
}
