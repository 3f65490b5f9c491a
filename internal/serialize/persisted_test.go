package serialize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONLargeIntPrecision(t *testing.T) {
	rec, err := DecodeJSON([]byte(`{
		"id": "wf-1",
		"name": "big numbers",
		"nodes": [{"id": "n1", "type": "set", "parameters": {"big": 9007199254740993}}]
	}`))
	require.NoError(t, err)

	// UseNumber keeps the value as json.Number instead of float64.
	num, ok := rec.Nodes[0].Parameters["big"].(json.Number)
	require.True(t, ok)
	assert.Equal(t, "9007199254740993", num.String())
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON([]byte(`{not json`))
	require.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	rec, err := DecodeYAML([]byte(`
id: wf-2
name: yaml workflow
nodes:
  - id: n1
    type: manualTrigger
    name: Start
  - id: n2
    type: httpRequest
    displayName: Fetch
    parameters:
      url: https://example.com
    timeout: 90
connections:
  - source: n1
    target: n2
settings:
  taskQueue: yaml-queue
`))
	require.NoError(t, err)

	assert.Equal(t, "wf-2", rec.ID)
	require.Len(t, rec.Nodes, 2)
	assert.Equal(t, "Fetch", rec.Nodes[1].DisplayName)
	require.NotNil(t, rec.Nodes[1].Timeout)
	assert.Equal(t, int64(90), *rec.Nodes[1].Timeout)
	require.NotNil(t, rec.Settings)
	assert.Equal(t, "yaml-queue", rec.Settings.TaskQueue)
}

func TestEncodeJSONNoHTMLEscaping(t *testing.T) {
	rec := &Record{
		ID:   "wf-3",
		Name: "a & b",
		Nodes: []RawNode{{
			ID: "n1", Type: "httpRequest",
			Parameters: map[string]any{"url": "https://example.com?a=1&b=2"},
		}},
	}

	data, err := EncodeJSON(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://example.com?a=1&b=2")
	assert.NotContains(t, string(data), `\u0026`)
}

func TestEncodeDecodeJSONRoundTrip(t *testing.T) {
	timeout := int64(45)
	rec := &Record{
		ID:   "wf-4",
		Name: "round trip",
		Nodes: []RawNode{{
			ID: "n1", Type: "wait",
			Name:    "Pause",
			Timeout: &timeout,
		}},
	}

	data, err := EncodeJSON(rec)
	require.NoError(t, err)
	back, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}
