package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchflow/latchc/internal/ir"
)

func TestToIRMinimalRecord(t *testing.T) {
	rec := &Record{
		ID:   "wf-1",
		Name: "Order Sync",
		Nodes: []RawNode{
			{ID: "n1", Type: "manualTrigger", Name: "Start"},
			{ID: "n2", Type: "httpRequest", Name: "Fetch", Parameters: map[string]any{
				"url": "https://example.com",
			}},
		},
		Connections: []RawConnection{{Source: "n1", Target: "n2"}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)

	assert.Equal(t, ir.SchemaVersion, w.Version)
	assert.Equal(t, "wf-1", w.Workflow.ID)
	assert.Equal(t, "Order Sync", w.Workflow.Name)
	require.Len(t, w.Nodes, 2)
	assert.Equal(t, ir.Object{"url": ir.String("https://example.com")}, w.Nodes[1].Parameters)
	require.Len(t, w.Connections, 1)
	assert.Equal(t, "n1", w.Connections[0].Source)
	assert.Equal(t, "n2", w.Connections[0].Target)
}

func TestToIRNilRecord(t *testing.T) {
	_, err := ToIR(nil)
	require.Error(t, err)
}

func TestNamePriorityDisplayNameWins(t *testing.T) {
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "set",
			Name:        "column-name",
			Label:       "imported-label",
			DisplayName: "Editor Name",
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Equal(t, "Editor Name", w.Nodes[0].Name)
}

func TestNamePriorityLabelOverName(t *testing.T) {
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "set",
			Name:  "column-name",
			Label: "imported-label",
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Equal(t, "imported-label", w.Nodes[0].Name)
}

func TestParameterPriorityParametersOverConfig(t *testing.T) {
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "set",
			Parameters: map[string]any{"from": "parameters"},
			Config:     map[string]any{"from": "config"},
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Equal(t, ir.String("parameters"), w.Nodes[0].Parameters["from"])
}

func TestParameterFallbackToConfig(t *testing.T) {
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "set",
			Config: map[string]any{"from": "config"},
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Equal(t, ir.String("config"), w.Nodes[0].Parameters["from"])
}

func TestEmptyParametersBeatAbsentConfig(t *testing.T) {
	// An empty-but-present parameters map is a defined source; config
	// must not leak through.
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "set",
			Parameters: map[string]any{},
			Config:     map[string]any{"stale": true},
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Empty(t, w.Nodes[0].Parameters)
	assert.NotNil(t, w.Nodes[0].Parameters)
}

func TestNoOptionsStaysNil(t *testing.T) {
	rec := &Record{
		Name:  "wf",
		Nodes: []RawNode{{ID: "n1", Type: "set"}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Nil(t, w.Nodes[0].ActivityOptions)
}

func TestRetryOnFailFalseDisablesRetries(t *testing.T) {
	f := false
	rec := &Record{
		Name:  "wf",
		Nodes: []RawNode{{ID: "n1", Type: "httpRequest", RetryOnFail: &f}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	require.NotNil(t, w.Nodes[0].ActivityOptions)
	assert.True(t, w.Nodes[0].ActivityOptions.RetryDisabled)
}

func TestRetryOnFailTrueIsDefault(t *testing.T) {
	tr := true
	rec := &Record{
		Name:  "wf",
		Nodes: []RawNode{{ID: "n1", Type: "httpRequest", RetryOnFail: &tr}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	require.NotNil(t, w.Nodes[0].ActivityOptions)
	assert.False(t, w.Nodes[0].ActivityOptions.RetryDisabled)

	// Normalized output drops the redundant retryOnFail = true.
	back, err := FromIR(w)
	require.NoError(t, err)
	assert.Nil(t, back.Nodes[0].RetryOnFail)
}

func TestActivityOptionsMapping(t *testing.T) {
	timeout := int64(120)
	heartbeat := int64(15)
	cont := true
	maxRetries := 5
	backoff := 1.5
	interval := "2s"
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "postgres",
			Timeout:            &timeout,
			HeartbeatTimeout:   &heartbeat,
			ContinueOnFail:     &cont,
			MaxRetries:         &maxRetries,
			BackoffCoefficient: &backoff,
			RetryInterval:      &interval,
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	opts := w.Nodes[0].ActivityOptions
	require.NotNil(t, opts)
	assert.Equal(t, int64(120), opts.StartToCloseTimeout)
	assert.Equal(t, int64(15), opts.HeartbeatTimeout)
	assert.True(t, opts.ContinueOnFail)
	assert.False(t, opts.RetryDisabled)
	require.NotNil(t, opts.RetryPolicy)
	assert.Equal(t, 5, opts.RetryPolicy.MaxAttempts)
	assert.Equal(t, 1.5, opts.RetryPolicy.BackoffCoefficient)
	assert.Equal(t, "2s", opts.RetryPolicy.InitialInterval)
}

func TestSettingsMapping(t *testing.T) {
	rec := &Record{
		Name:  "wf",
		Nodes: []RawNode{{ID: "n1", Type: "set"}},
		Settings: &Settings{
			TaskQueue: "orders",
			Timeout:   3600,
			RetryPolicy: &RawRetryPolicy{
				MaxAttempts:        4,
				BackoffCoefficient: 2.0,
				InitialInterval:    "1s",
			},
		},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	assert.Equal(t, "orders", w.Workflow.TaskQueue)
	assert.Equal(t, int64(3600), w.Workflow.Timeout)
	require.NotNil(t, w.Workflow.RetryPolicy)
	assert.Equal(t, 4, w.Workflow.RetryPolicy.MaxAttempts)
}

func TestRoundTripNormalizedRecord(t *testing.T) {
	// Normalized documents (name in name, data in parameters) round-trip
	// exactly through the IR.
	timeout := int64(60)
	f := false
	rec := &Record{
		ID:   "wf-9",
		Name: "Round Trip",
		Nodes: []RawNode{
			{ID: "n1", Type: "manualTrigger", Name: "Start"},
			{
				ID: "n2", Type: "httpRequest", Name: "Fetch",
				Parameters:  map[string]any{"url": "https://example.com", "retries": int64(3)},
				Timeout:     &timeout,
				RetryOnFail: &f,
			},
		},
		Connections: []RawConnection{{Source: "n1", Target: "n2"}},
		Settings:    &Settings{TaskQueue: "rt"},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	back, err := FromIR(w)
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestFromIRNormalizesLegacyFields(t *testing.T) {
	rec := &Record{
		Name: "wf",
		Nodes: []RawNode{{
			ID: "n1", Type: "set",
			DisplayName: "Pretty",
			Config:      map[string]any{"k": "v"},
		}},
	}

	w, err := ToIR(rec)
	require.NoError(t, err)
	back, err := FromIR(w)
	require.NoError(t, err)

	// Legacy locations collapse into the canonical fields.
	assert.Equal(t, "Pretty", back.Nodes[0].Name)
	assert.Empty(t, back.Nodes[0].DisplayName)
	assert.Empty(t, back.Nodes[0].Label)
	assert.Equal(t, map[string]any{"k": "v"}, back.Nodes[0].Parameters)
	assert.Nil(t, back.Nodes[0].Config)
}
