package serialize

import (
	"fmt"

	"github.com/latchflow/latchc/internal/ir"
)

// ToIR canonicalizes a persisted record into the IR. Pure function of
// its input; the record is not mutated.
func ToIR(rec *Record) (*ir.Workflow, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil workflow record")
	}

	nodes := make([]ir.Node, 0, len(rec.Nodes))
	for i := range rec.Nodes {
		node, err := nodeToIR(&rec.Nodes[i])
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", rec.Nodes[i].ID, err)
		}
		nodes = append(nodes, node)
	}

	conns := make([]ir.Connection, 0, len(rec.Connections))
	for _, c := range rec.Connections {
		conns = append(conns, ir.Connection{
			Source:       c.Source,
			Target:       c.Target,
			SourceHandle: c.SourceHandle,
			TargetHandle: c.TargetHandle,
			Condition:    c.Condition,
		})
	}

	meta := ir.Metadata{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Tags:        rec.Tags,
	}
	if rec.Settings != nil {
		meta.TaskQueue = rec.Settings.TaskQueue
		meta.Timeout = rec.Settings.Timeout
		if rp := rec.Settings.RetryPolicy; rp != nil {
			meta.RetryPolicy = &ir.RetryPolicy{
				MaxAttempts:        rp.MaxAttempts,
				BackoffCoefficient: rp.BackoffCoefficient,
				InitialInterval:    rp.InitialInterval,
			}
		}
	}

	return &ir.Workflow{
		Version:     ir.SchemaVersion,
		Workflow:    meta,
		Nodes:       nodes,
		Connections: conns,
	}, nil
}

func nodeToIR(raw *RawNode) (ir.Node, error) {
	params, err := objectFromGo(extractParameters(raw))
	if err != nil {
		return ir.Node{}, fmt.Errorf("parameters: %w", err)
	}
	creds, err := objectFromGo(raw.Credentials)
	if err != nil {
		return ir.Node{}, fmt.Errorf("credentials: %w", err)
	}

	node := ir.Node{
		ID:          raw.ID,
		Type:        raw.Type,
		Name:        extractName(raw),
		Position:    raw.Position,
		Parameters:  params,
		Credentials: creds,
	}

	if hasActivityOptions(raw) {
		opts := &ir.ActivityOptions{}
		if raw.Timeout != nil {
			opts.StartToCloseTimeout = *raw.Timeout
		}
		if raw.ScheduleToCloseTimeout != nil {
			opts.ScheduleToCloseTimeout = *raw.ScheduleToCloseTimeout
		}
		if raw.HeartbeatTimeout != nil {
			opts.HeartbeatTimeout = *raw.HeartbeatTimeout
		}
		if raw.ContinueOnFail != nil {
			opts.ContinueOnFail = *raw.ContinueOnFail
		}
		if raw.RetryOnFail != nil && !*raw.RetryOnFail {
			opts.RetryDisabled = true
		}
		if hasRetryPolicyFields(raw) {
			rp := &ir.RetryPolicy{}
			if raw.MaxRetries != nil {
				rp.MaxAttempts = *raw.MaxRetries
			}
			if raw.BackoffCoefficient != nil {
				rp.BackoffCoefficient = *raw.BackoffCoefficient
			}
			if raw.RetryInterval != nil {
				rp.InitialInterval = *raw.RetryInterval
			}
			opts.RetryPolicy = rp
		}
		node.ActivityOptions = opts
	}

	return node, nil
}

// objectFromGo converts a decoded parameter map into an ir.Object.
// A nil map stays nil so optional blocks round-trip as absent.
func objectFromGo(m map[string]any) (ir.Object, error) {
	if m == nil {
		return nil, nil
	}
	obj := make(ir.Object, len(m))
	for k, v := range m {
		converted, err := ir.FromGo(v)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", k, err)
		}
		obj[k] = converted
	}
	return obj, nil
}

// FromIR maps an IR value back to the persisted shape. Normalized
// output: display names land in the name field, parameter data in the
// parameters field, and a disabled-retry option becomes retryOnFail =
// false. Values that only existed in legacy locations are not
// reconstructed; that is the documented default-normalization.
func FromIR(w *ir.Workflow) (*Record, error) {
	if w == nil {
		return nil, fmt.Errorf("nil workflow IR")
	}

	nodes := make([]RawNode, 0, len(w.Nodes))
	for i := range w.Nodes {
		nodes = append(nodes, nodeFromIR(&w.Nodes[i]))
	}

	conns := make([]RawConnection, 0, len(w.Connections))
	for _, c := range w.Connections {
		conns = append(conns, RawConnection{
			Source:       c.Source,
			Target:       c.Target,
			SourceHandle: c.SourceHandle,
			TargetHandle: c.TargetHandle,
			Condition:    c.Condition,
		})
	}

	rec := &Record{
		ID:          w.Workflow.ID,
		Name:        w.Workflow.Name,
		Description: w.Workflow.Description,
		Nodes:       nodes,
		Connections: conns,
		Tags:        w.Workflow.Tags,
	}
	if w.Workflow.TaskQueue != "" || w.Workflow.Timeout != 0 || w.Workflow.RetryPolicy != nil {
		settings := &Settings{
			TaskQueue: w.Workflow.TaskQueue,
			Timeout:   w.Workflow.Timeout,
		}
		if rp := w.Workflow.RetryPolicy; rp != nil {
			settings.RetryPolicy = &RawRetryPolicy{
				MaxAttempts:        rp.MaxAttempts,
				BackoffCoefficient: rp.BackoffCoefficient,
				InitialInterval:    rp.InitialInterval,
			}
		}
		rec.Settings = settings
	}

	return rec, nil
}

func nodeFromIR(node *ir.Node) RawNode {
	raw := RawNode{
		ID:       node.ID,
		Type:     node.Type,
		Name:     node.Name,
		Position: node.Position,
	}
	if node.Parameters != nil {
		raw.Parameters = ir.ToGo(node.Parameters).(map[string]any)
	}
	if node.Credentials != nil {
		raw.Credentials = ir.ToGo(node.Credentials).(map[string]any)
	}

	opts := node.ActivityOptions
	if opts == nil {
		return raw
	}
	if opts.StartToCloseTimeout != 0 {
		raw.Timeout = ptr(opts.StartToCloseTimeout)
	}
	if opts.ScheduleToCloseTimeout != 0 {
		raw.ScheduleToCloseTimeout = ptr(opts.ScheduleToCloseTimeout)
	}
	if opts.HeartbeatTimeout != 0 {
		raw.HeartbeatTimeout = ptr(opts.HeartbeatTimeout)
	}
	if opts.ContinueOnFail {
		raw.ContinueOnFail = ptr(true)
	}
	if opts.RetryDisabled {
		raw.RetryOnFail = ptr(false)
	}
	if rp := opts.RetryPolicy; rp != nil {
		if rp.MaxAttempts != 0 {
			raw.MaxRetries = ptr(rp.MaxAttempts)
		}
		if rp.BackoffCoefficient != 0 {
			raw.BackoffCoefficient = ptr(rp.BackoffCoefficient)
		}
		if rp.InitialInterval != "" {
			raw.RetryInterval = ptr(rp.InitialInterval)
		}
	}
	return raw
}

func ptr[T any](v T) *T { return &v }
