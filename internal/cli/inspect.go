package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/latchflow/latchc/internal/codegen"
	"github.com/latchflow/latchc/internal/serialize"
)

// NodeInfo summarizes one node for inspection output.
type NodeInfo struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Role    string `json:"role"` // "trigger" | "activity"
	Known   bool   `json:"known"`
	Retries bool   `json:"retries"`
}

// InspectResult describes a workflow's shape without generating code.
type InspectResult struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Version     string     `json:"version"`
	TaskQueue   string     `json:"task_queue,omitempty"`
	Nodes       []NodeInfo `json:"nodes"`
	Connections int        `json:"connections"`
	Activities  int        `json:"activities"`
	Triggers    int        `json:"triggers"`
}

// NewInspectCommand creates the inspect command: summarize a workflow's
// IR without generating anything.
func NewInspectCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file-or-id>",
		Short: "Show a workflow's structure as seen by the compiler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args[0])
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, opts *RootOptions, source string) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	rec, err := loadRecord(cmd.Context(), opts, source)
	if err != nil {
		return reportError(formatter, err)
	}

	w, err := serialize.ToIR(rec)
	if err != nil {
		return reportError(formatter, WrapExitError(ExitCommandError, "lower workflow to IR", err))
	}

	reg := codegen.NewRegistry()
	result := InspectResult{
		ID:          w.Workflow.ID,
		Name:        w.Workflow.Name,
		Description: w.Workflow.Description,
		Version:     w.Version,
		TaskQueue:   w.Workflow.TaskQueue,
		Connections: len(w.Connections),
	}
	for _, node := range w.Nodes {
		role := "activity"
		if reg.IsTrigger(node.Type) {
			role = "trigger"
			result.Triggers++
		} else {
			result.Activities++
		}
		nodeOpts := node.Options()
		result.Nodes = append(result.Nodes, NodeInfo{
			ID:      node.ID,
			Type:    node.Type,
			Name:    node.Name,
			Role:    role,
			Known:   reg.Known(node.Type),
			Retries: !nodeOpts.RetryDisabled,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	printInspect(cmd, &result)
	return nil
}

func printInspect(cmd *cobra.Command, r *InspectResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Workflow: %s (version %s)\n", r.Name, r.Version)
	if r.Description != "" {
		fmt.Fprintf(out, "  %s\n", r.Description)
	}
	if r.TaskQueue != "" {
		fmt.Fprintf(out, "Task queue: %s\n", r.TaskQueue)
	}
	fmt.Fprintf(out, "Nodes: %d (%d trigger, %d activity), connections: %d\n",
		len(r.Nodes), r.Triggers, r.Activities, r.Connections)
	for _, n := range r.Nodes {
		marker := ""
		if !n.Known {
			marker = "  [unimplemented connector]"
		}
		fmt.Fprintf(out, "  %-10s %-20s %s%s\n", n.Role, n.Type, n.Name, marker)
	}
}
