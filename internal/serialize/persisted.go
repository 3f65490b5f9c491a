package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is the persisted workflow record as stored by the editor
// backend. Field names follow the storage schema, not the IR.
type Record struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Nodes       []RawNode       `json:"nodes" yaml:"nodes"`
	Connections []RawConnection `json:"connections,omitempty" yaml:"connections,omitempty"`
	Settings    *Settings       `json:"settings,omitempty" yaml:"settings,omitempty"`
	Tags        []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// RawNode is a node as persisted. Several logical values have more than
// one legacy home: the display name may live in displayName, label, or
// name, and parameter data in parameters or config. Option fields are
// pointers so "absent" and "zero" stay distinguishable.
type RawNode struct {
	ID          string         `json:"id" yaml:"id"`
	Type        string         `json:"type" yaml:"type"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	DisplayName string         `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Position    []float64      `json:"position,omitempty" yaml:"position,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Config      map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
	Credentials map[string]any `json:"credentials,omitempty" yaml:"credentials,omitempty"`

	Timeout                *int64   `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ScheduleToCloseTimeout *int64   `json:"scheduleToCloseTimeout,omitempty" yaml:"scheduleToCloseTimeout,omitempty"`
	HeartbeatTimeout       *int64   `json:"heartbeatTimeout,omitempty" yaml:"heartbeatTimeout,omitempty"`
	ContinueOnFail         *bool    `json:"continueOnFail,omitempty" yaml:"continueOnFail,omitempty"`
	RetryOnFail            *bool    `json:"retryOnFail,omitempty" yaml:"retryOnFail,omitempty"`
	MaxRetries             *int     `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty"`
	BackoffCoefficient     *float64 `json:"backoffCoefficient,omitempty" yaml:"backoffCoefficient,omitempty"`
	RetryInterval          *string  `json:"retryInterval,omitempty" yaml:"retryInterval,omitempty"`
}

// RawConnection is an edge as persisted.
type RawConnection struct {
	Source       string `json:"source" yaml:"source"`
	Target       string `json:"target" yaml:"target"`
	SourceHandle string `json:"sourceHandle,omitempty" yaml:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty" yaml:"targetHandle,omitempty"`
	Condition    string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// Settings holds workflow-level settings from the record.
type Settings struct {
	TaskQueue   string          `json:"taskQueue,omitempty" yaml:"taskQueue,omitempty"`
	Timeout     int64           `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RetryPolicy *RawRetryPolicy `json:"retryPolicy,omitempty" yaml:"retryPolicy,omitempty"`
}

// RawRetryPolicy is the persisted shape of a retry policy.
type RawRetryPolicy struct {
	MaxAttempts        int     `json:"maxAttempts,omitempty" yaml:"maxAttempts,omitempty"`
	BackoffCoefficient float64 `json:"backoffCoefficient,omitempty" yaml:"backoffCoefficient,omitempty"`
	InitialInterval    string  `json:"initialInterval,omitempty" yaml:"initialInterval,omitempty"`
}

// DecodeJSON parses a persisted record from JSON bytes. Numbers are
// decoded through json.Number so large integers in parameter trees keep
// full precision.
func DecodeJSON(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode workflow record: %w", err)
	}
	return &rec, nil
}

// DecodeYAML parses a persisted record from YAML bytes.
func DecodeYAML(data []byte) (*Record, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode workflow record: %w", err)
	}
	return &rec, nil
}

// EncodeJSON serializes a persisted record to indented JSON.
func EncodeJSON(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode workflow record: %w", err)
	}
	return buf.Bytes(), nil
}
