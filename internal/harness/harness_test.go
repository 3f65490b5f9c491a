package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchflow/latchc/internal/export"
)

const httpFetchRecord = `{
	"id": "wf-http",
	"name": "HTTP Fetch",
	"nodes": [
		{"id": "n1", "type": "manualTrigger", "name": "Start"},
		{
			"id": "n2",
			"type": "httpRequest",
			"name": "Fetch Example",
			"parameters": {"url": "https://example.com", "method": "GET"}
		}
	],
	"connections": [{"source": "n1", "target": "n2"}]
}`

func TestRunHTTPFetchScenario(t *testing.T) {
	result, err := Run(&Scenario{Name: "http_fetch", Record: []byte(httpFetchRecord)})
	require.NoError(t, err)

	assert.Equal(t, "HTTP Fetch", result.Workflow.Workflow.Name)
	assert.Len(t, result.Files, len(export.ArtifactNames))
	assert.Len(t, result.Digest, 64)
}

func TestRunScenarioDeterministicDigest(t *testing.T) {
	s := &Scenario{Name: "http_fetch", Record: []byte(httpFetchRecord)}

	first, err := Run(s)
	require.NoError(t, err)
	again, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, first.Digest, again.Digest)
	assert.Equal(t, first.Files, again.Files)
}

func TestRunRejectsInvalidRecord(t *testing.T) {
	_, err := Run(&Scenario{Name: "broken", Record: []byte(`{"name": "", "nodes": []}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestHTTPFetchGoldenArtifacts(t *testing.T) {
	result, err := Run(&Scenario{Name: "http_fetch", Record: []byte(httpFetchRecord)})
	require.NoError(t, err)

	AssertArtifacts(t, "http_fetch", result,
		export.FileWorkflow,
		export.FileRequirements,
		export.FileDockerfile,
		export.FileCompose,
		export.FileRunScript,
		export.FileDockerIgnore,
		export.FileEnvExample,
	)
}
