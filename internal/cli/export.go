package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/latchflow/latchc/internal/codegen"
	"github.com/latchflow/latchc/internal/export"
	"github.com/latchflow/latchc/internal/serialize"
	"github.com/latchflow/latchc/internal/validate"
)

// ExportResult is the payload printed after a successful export.
type ExportResult struct {
	Workflow  string   `json:"workflow"`
	OutputDir string   `json:"output_dir"`
	Files     []string `json:"files"`
	Digest    string   `json:"digest"`
}

// NewExportCommand creates the export command: compile a workflow into
// the deployable application file set.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export <file-or-id>",
		Short: "Compile a workflow into a deployable Temporal application",
		Long: `Export loads a workflow record from a JSON/YAML file or from the
local store, lowers it to the canonical IR, and generates the complete
application: workflow.py, activities.py, worker.py, starter.py, and the
deployment scaffolding. Generation is deterministic: the same workflow
always produces byte-identical files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args[0], outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	return cmd
}

func runExport(cmd *cobra.Command, opts *RootOptions, source, outputDir string) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	rec, err := loadRecord(cmd.Context(), opts, source)
	if err != nil {
		return reportError(formatter, err)
	}

	w, err := serialize.ToIR(rec)
	if err != nil {
		return reportError(formatter, WrapExitError(ExitCommandError, "lower workflow to IR", err))
	}
	if opts.Config.TaskQueue != "" && w.Workflow.TaskQueue == "" {
		w.Workflow.TaskQueue = opts.Config.TaskQueue
	}

	reg := codegen.NewRegistry()
	files, err := export.Workflow(reg, w)
	if err != nil {
		var invalid *validate.InvalidWorkflowError
		if errors.As(err, &invalid) {
			formatter.Failure("VALIDATION_FAILED", err.Error(), invalid.Errors)
			return NewExitError(ExitFailure, "workflow validation failed")
		}
		return reportError(formatter, WrapExitError(ExitCommandError, "export workflow", err))
	}

	if outputDir == "" {
		outputDir = filepath.Join(opts.Config.OutputDir, export.Slug(w.Workflow.Name))
	}
	if err := writeArtifacts(outputDir, files); err != nil {
		return reportError(formatter, err)
	}

	digest, err := export.Digest(files)
	if err != nil {
		return reportError(formatter, WrapExitError(ExitCommandError, "compute export digest", err))
	}

	opts.Logger.Info().
		Str("workflow", w.Workflow.Name).
		Str("dir", outputDir).
		Int("files", len(files)).
		Msg("export complete")

	result := ExportResult{
		Workflow:  w.Workflow.Name,
		OutputDir: outputDir,
		Files:     export.ArtifactNames,
		Digest:    digest,
	}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %q to %s (%d files)\n", result.Workflow, result.OutputDir, len(result.Files))
	fmt.Fprintf(cmd.OutOrStdout(), "Digest: %s\n", result.Digest)
	return nil
}

// writeArtifacts writes the generated file set in stable order. run.sh
// gets the executable bit; everything else is plain.
func writeArtifacts(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "create output directory", err)
	}
	for _, name := range export.ArtifactNames {
		mode := os.FileMode(0o644)
		if name == export.FileRunScript {
			mode = 0o755
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), mode); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("write %s", name), err)
		}
	}
	return nil
}

func reportError(formatter *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		formatter.Failure("COMMAND_ERROR", exitErr.Error(), nil)
		return exitErr
	}
	formatter.Failure("COMMAND_ERROR", err.Error(), nil)
	return WrapExitError(ExitCommandError, "command failed", err)
}
