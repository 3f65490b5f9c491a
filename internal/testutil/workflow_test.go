package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latchflow/latchc/internal/ir"
)

func TestWorkflowBuilder(t *testing.T) {
	w := Workflow("demo", Trigger("t1"), HTTPNode("n1", "Fetch", "https://example.com"))

	assert.Equal(t, ir.SchemaVersion, w.Version)
	assert.Equal(t, "demo", w.Workflow.Name)
	assert.Len(t, w.Nodes, 2)
	assert.Equal(t, "manualTrigger", w.Nodes[0].Type)
	assert.Equal(t, ir.String("https://example.com"), w.Nodes[1].Parameters["url"])
}

func TestConnectAppends(t *testing.T) {
	w := Workflow("demo", Trigger("t1"), Node("n1", "set", "Shape", nil))
	Connect(w, "t1", "n1")

	assert.Len(t, w.Connections, 1)
	assert.Equal(t, "t1", w.Connections[0].Source)
}
