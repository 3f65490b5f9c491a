package ir

// Workflow is the canonical, versioned representation of a workflow
// graph. All connections must reference node ids present in Nodes; the
// validator enforces this and the compiler consumes it as a precondition.
type Workflow struct {
	Version     string       `json:"version"`
	Workflow    Metadata     `json:"workflow"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// Metadata holds workflow-level settings owned by the workflow record.
// It is mutated only through the serializer's reverse mapping.
type Metadata struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	TaskQueue   string       `json:"task_queue,omitempty"`
	Timeout     int64        `json:"timeout,omitempty"` // seconds
	RetryPolicy *RetryPolicy `json:"retry_policy,omitempty"`
}

// Node is one vertex of the workflow graph.
//
// Type is a dotted taxonomy string. It determines whether the node is a
// trigger (workflow entry, no task emitted) or an activity (one task
// emitted), and which code generator applies. Credential-reference nodes
// use the convention "credential.<credentialType>.<credentialId>" layered
// on the same type string.
type Node struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Name            string           `json:"name"`
	Position        []float64        `json:"position,omitempty"`
	Parameters      Object           `json:"parameters"`
	Credentials     Object           `json:"credentials,omitempty"`
	ActivityOptions *ActivityOptions `json:"activity_options,omitempty"`
}

// ActivityOptions carries per-node reliability policy. All fields are
// optional; absent fields take the documented defaults at emission time
// (300s start-to-close timeout, retries enabled with 3 attempts, 1s
// initial interval, 2.0 backoff coefficient).
type ActivityOptions struct {
	StartToCloseTimeout    int64        `json:"start_to_close_timeout,omitempty"`    // seconds
	ScheduleToCloseTimeout int64        `json:"schedule_to_close_timeout,omitempty"` // seconds
	HeartbeatTimeout       int64        `json:"heartbeat_timeout,omitempty"`         // seconds
	ContinueOnFail         bool         `json:"continue_on_fail,omitempty"`
	RetryDisabled          bool         `json:"retry_disabled,omitempty"`
	RetryPolicy            *RetryPolicy `json:"retry_policy,omitempty"`
}

// RetryPolicy is declarative retry data carried into the generated
// application. It never describes the compiler's own execution.
type RetryPolicy struct {
	MaxAttempts        int     `json:"max_attempts,omitempty"`
	BackoffCoefficient float64 `json:"backoff_coefficient,omitempty"`
	InitialInterval    string  `json:"initial_interval,omitempty"` // duration string, e.g. "1s"
}

// Connection is a directed edge between two nodes. Connections are
// carried through the IR but are not used to order emitted task
// invocations; activities run strictly in node-list order.
type Connection struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"source_handle,omitempty"`
	TargetHandle string `json:"target_handle,omitempty"`
	Condition    string `json:"condition,omitempty"`
}

// Emission defaults applied when activity options are absent.
const (
	DefaultStartToCloseSeconds = 300
	DefaultMaxAttempts         = 3
	DefaultInitialInterval     = "1s"
	DefaultBackoffCoefficient  = 2.0
)

// NodeByID returns the node with the given id, or nil.
func (w *Workflow) NodeByID(id string) *Node {
	for i := range w.Nodes {
		if w.Nodes[i].ID == id {
			return &w.Nodes[i]
		}
	}
	return nil
}

// Options returns the node's activity options, or a zero value when the
// node carries none. The zero value yields all emission defaults.
func (n *Node) Options() ActivityOptions {
	if n.ActivityOptions == nil {
		return ActivityOptions{}
	}
	return *n.ActivityOptions
}
