package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchflow/latchc/internal/ir"
)

func TestEmitActivitiesFileBasics(t *testing.T) {
	reg := NewRegistry()
	activities := []ir.Node{
		{ID: "n1", Type: "httpRequest", Name: "Fetch"},
		{ID: "n2", Type: "set", Name: "Shape"},
	}

	src, err := EmitActivitiesFile(reg, "Demo Flow", activities, []string{"node_1_fetch", "node_2_shape"})
	require.NoError(t, err)

	assert.Contains(t, src, "Activity implementations for Demo Flow.")
	assert.Contains(t, src, "from temporalio import activity")
	assert.Contains(t, src, "class ActivityInput:")
	assert.Contains(t, src, "import aiohttp")
	assert.Contains(t, src, "async def node_1_fetch")
	assert.Contains(t, src, "async def node_2_shape")
}

func TestEmitActivitiesFileImportDedup(t *testing.T) {
	reg := NewRegistry()
	activities := []ir.Node{
		{ID: "n1", Type: "postgres", Name: "Query A"},
		{ID: "n2", Type: "postgres", Name: "Query B"},
		{ID: "n3", Type: "postgres", Name: "Query C"},
	}

	src, err := EmitActivitiesFile(reg, "wf", activities, []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(src, "import psycopg2"))
}

func TestEmitActivitiesFileImportsSorted(t *testing.T) {
	reg := NewRegistry()
	activities := []ir.Node{
		{ID: "n1", Type: "wait", Name: "Pause"},
		{ID: "n2", Type: "cassandra", Name: "CQL"},
		{ID: "n3", Type: "httpRequest", Name: "Fetch"},
	}

	src, err := EmitActivitiesFile(reg, "wf", activities, []string{"a", "b", "c"})
	require.NoError(t, err)

	aio := strings.Index(src, "import aiohttp")
	asy := strings.Index(src, "import asyncio")
	cass := strings.Index(src, "from cassandra.auth")
	require.True(t, aio >= 0 && asy >= 0 && cass >= 0)
	// Sorted lexicographically: "from ..." before "import ...".
	assert.Less(t, cass, aio)
	assert.Less(t, aio, asy)
}

func TestEmitActivitiesFileNoConnectorImports(t *testing.T) {
	reg := NewRegistry()
	activities := []ir.Node{{ID: "n1", Type: "set", Name: "Shape"}}

	src, err := EmitActivitiesFile(reg, "wf", activities, []string{"node_1_shape"})
	require.NoError(t, err)

	assert.NotContains(t, src, "import aiohttp")
	assert.NotContains(t, src, "import psycopg2")
}

func TestEmitActivitiesFileLengthMismatch(t *testing.T) {
	reg := NewRegistry()
	_, err := EmitActivitiesFile(reg, "wf", []ir.Node{{ID: "n1", Type: "set"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length mismatch")
}

func TestEmitActivitiesFileUnknownTypeGetsStub(t *testing.T) {
	reg := NewRegistry()
	activities := []ir.Node{{ID: "n1", Type: "telegramBot", Name: "Notify"}}

	src, err := EmitActivitiesFile(reg, "wf", activities, []string{"node_1_notify"})
	require.NoError(t, err)

	assert.Contains(t, src, "NOT YET IMPLEMENTED")
	assert.Contains(t, src, "async def node_1_notify")
}
