// Package export assembles the complete deployable application for a
// workflow IR: the orchestration definition, the task implementations,
// and the deployment scaffolding, returned as a named file set.
//
// Export is a pure, synchronous transformation. No network or filesystem
// access happens here; writing the returned map to disk is the caller's
// responsibility. Two exports of the same IR are byte-identical.
package export

import (
	"fmt"

	"github.com/latchflow/latchc/internal/codegen"
	"github.com/latchflow/latchc/internal/ir"
	"github.com/latchflow/latchc/internal/manifest"
	"github.com/latchflow/latchc/internal/validate"
)

// Artifact names. The set is fixed: every export produces exactly these
// files.
const (
	FileWorkflow     = "workflow.py"
	FileActivities   = "activities.py"
	FileWorker       = "worker.py"
	FileStarter      = "starter.py"
	FileRequirements = "requirements.txt"
	FileDockerfile   = "Dockerfile"
	FileCompose      = "docker-compose.yml"
	FileRunScript    = "run.sh"
	FileDockerIgnore = ".dockerignore"
	FileEnvExample   = ".env.example"
	FileReadme       = "README.md"
)

// ArtifactNames lists every generated artifact in stable order.
var ArtifactNames = []string{
	FileWorkflow,
	FileActivities,
	FileWorker,
	FileStarter,
	FileRequirements,
	FileDockerfile,
	FileCompose,
	FileRunScript,
	FileDockerIgnore,
	FileEnvExample,
	FileReadme,
}

// Workflow validates the IR and generates the complete artifact set.
// Validation failure blocks generation entirely: no partial file set is
// ever returned, and the validation error surfaces unchanged (as a
// *validate.InvalidWorkflowError).
func Workflow(reg *codegen.Registry, w *ir.Workflow) (map[string]string, error) {
	if err := validate.Assert(w); err != nil {
		return nil, err
	}

	activities := reg.Activities(w)
	names := funcNames(activities)

	workflowPy, err := EmitWorkflowFile(reg, w)
	if err != nil {
		return nil, fmt.Errorf("emit workflow definition: %w", err)
	}
	activitiesPy, err := codegen.EmitActivitiesFile(reg, w.Workflow.Name, activities, names)
	if err != nil {
		return nil, fmt.Errorf("emit activities: %w", err)
	}

	queue := taskQueue(w)
	return map[string]string{
		FileWorkflow:     workflowPy,
		FileActivities:   activitiesPy,
		FileWorker:       EmitWorkerFile(reg, w),
		FileStarter:      EmitStarterFile(w),
		FileRequirements: manifest.Requirements(w),
		FileDockerfile:   manifest.Dockerfile(w),
		FileCompose:      manifest.DockerCompose(w),
		FileRunScript:    manifest.RunScript(w, queue),
		FileDockerIgnore: manifest.DockerIgnore(),
		FileEnvExample:   manifest.EnvExample(w),
		FileReadme:       EmitReadme(w),
	}, nil
}

// Digest computes the content digest of a generated artifact set.
func Digest(files map[string]string) (string, error) {
	return ir.ExportDigest(files)
}
