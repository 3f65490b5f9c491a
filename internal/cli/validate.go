package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latchflow/latchc/internal/serialize"
	"github.com/latchflow/latchc/internal/validate"
)

// NewValidateCommand creates the validate command: check a workflow
// without generating anything.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file-or-id>",
		Short: "Validate a workflow without generating code",
		Long: `Validate loads a workflow record, lowers it to the canonical IR, and
runs the full validation pass. Every finding is reported; validation
does not stop at the first error. Exit code 0 means valid, 1 means
validation errors were found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args[0])
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, opts *RootOptions, source string) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	rec, err := loadRecord(cmd.Context(), opts, source)
	if err != nil {
		return reportError(formatter, err)
	}

	w, err := serialize.ToIR(rec)
	if err != nil {
		return reportError(formatter, WrapExitError(ExitCommandError, "lower workflow to IR", err))
	}

	result := validate.Validate(w)
	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "Workflow %q is valid\n", w.Workflow.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Workflow %q has %d validation error(s):\n", w.Workflow.Name, len(result.Errors))
		for _, ve := range result.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ve.Error())
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, "workflow validation failed")
	}
	return nil
}
