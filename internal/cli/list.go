package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latchflow/latchc/internal/store"
)

// NewListCommand creates the list command: enumerate stored workflow
// records.
func NewListCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow records in the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	return cmd
}

func runList(cmd *cobra.Command, opts *RootOptions) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	st, err := store.Open(opts.Config.Database)
	if err != nil {
		return reportError(formatter, WrapExitError(ExitCommandError, "open workflow store", err))
	}
	defer st.Close()

	records, err := st.ListRecords(cmd.Context())
	if err != nil {
		return reportError(formatter, WrapExitError(ExitCommandError, "list workflow records", err))
	}

	if opts.Format == "json" {
		if records == nil {
			records = []store.RecordSummary{}
		}
		return formatter.Success(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No workflow records found")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-38s %-30s %s\n", "ID", "NAME", "UPDATED")
	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%-38s %-30s %s\n", rec.ID, rec.Name, rec.UpdatedAt)
	}
	return nil
}
