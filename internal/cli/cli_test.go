package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchflow/latchc/internal/export"
)

const validWorkflowJSON = `{
	"id": "wf-cli",
	"name": "CLI Flow",
	"nodes": [
		{"id": "n1", "type": "manualTrigger", "name": "Start"},
		{"id": "n2", "type": "httpRequest", "name": "Fetch", "parameters": {"url": "https://example.com"}}
	],
	"connections": [{"source": "n1", "target": "n2"}]
}`

func writeWorkflowFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workflow.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommandValidFile(t *testing.T) {
	path := writeWorkflowFile(t, validWorkflowJSON)

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"CLI Flow" is valid`)
}

func TestValidateCommandInvalidFile(t *testing.T) {
	path := writeWorkflowFile(t, `{"name": "", "nodes": []}`)

	out, err := runCLI(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "E101")
	assert.Contains(t, out, "E102")
}

func TestValidateCommandJSONFormat(t *testing.T) {
	path := writeWorkflowFile(t, validWorkflowJSON)

	out, err := runCLI(t, "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := runCLI(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExportCommandWritesArtifacts(t *testing.T) {
	path := writeWorkflowFile(t, validWorkflowJSON)
	outDir := filepath.Join(t.TempDir(), "dist")

	out, err := runCLI(t, "export", path, "--output", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")
	assert.Contains(t, out, "Digest: ")

	for _, name := range export.ArtifactNames {
		_, statErr := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, statErr, "expected artifact %s", name)
	}

	// run.sh carries the executable bit.
	info, statErr := os.Stat(filepath.Join(outDir, export.FileRunScript))
	require.NoError(t, statErr)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestExportCommandInvalidWorkflow(t *testing.T) {
	path := writeWorkflowFile(t, `{"name": "", "nodes": []}`)

	_, err := runCLI(t, "export", path, "--output", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestInspectCommand(t *testing.T) {
	path := writeWorkflowFile(t, validWorkflowJSON)

	out, err := runCLI(t, "--format", "json", "inspect", path)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   InspectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "CLI Flow", resp.Data.Name)
	assert.Equal(t, 1, resp.Data.Triggers)
	assert.Equal(t, 1, resp.Data.Activities)
	require.Len(t, resp.Data.Nodes, 2)
	assert.Equal(t, "trigger", resp.Data.Nodes[0].Role)
}

func TestRejectsUnknownFormat(t *testing.T) {
	path := writeWorkflowFile(t, validWorkflowJSON)

	_, err := runCLI(t, "--format", "xml", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
