package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/latchflow/latchc/internal/codegen"
	"github.com/latchflow/latchc/internal/ir"
)

// EmitWorkflowFile produces workflow.py: the single workflow entry
// point. Activities are invoked strictly in node-list order, each
// receiving the accumulated result of the previous invocation;
// connections are deliberately not consulted for ordering or branching.
func EmitWorkflowFile(reg *codegen.Registry, w *ir.Workflow) (string, error) {
	activities := reg.Activities(w)
	names := funcNames(activities)
	class := className(w.Workflow.Name)
	queue := taskQueue(w)

	var b strings.Builder
	b.WriteString(`"""` + "\n")
	b.WriteString(w.Workflow.Name + "\n")
	if w.Workflow.Description != "" {
		b.WriteString(w.Workflow.Description + "\n")
	}
	b.WriteString(`
Auto-generated Temporal workflow with durable activity execution.
"""
from datetime import timedelta
from typing import Any, Dict, Optional

from temporalio import workflow
from temporalio.common import RetryPolicy

with workflow.unsafe.imports_passed_through():
    from activities import ActivityInput


@workflow.defn
`)
	fmt.Fprintf(&b, "class %s:\n", class)
	b.WriteString(`    """Orchestrates the workflow's activities in sequence.

    Each activity is durable: if the worker crashes, Temporal resumes
    from the last completed activity.

    Task queue: ` + queue + `
    """

    @workflow.run
    async def run(self, input_data: Optional[Dict[str, Any]] = None) -> Dict[str, Any]:
        result = input_data or {}
        workflow.logger.info("starting workflow with input: %s", result)
`)

	for i := range activities {
		node := &activities[i]
		invocation, err := emitInvocation(node, names[i])
		if err != nil {
			return "", fmt.Errorf("node %q: %w", node.ID, err)
		}
		b.WriteString("\n")
		b.WriteString(invocation)
	}

	b.WriteString(`
        workflow.logger.info("workflow completed with result: %s", result)
        return result
`)
	return b.String(), nil
}

// emitInvocation wraps one task invocation with its timeout clause,
// retry clause, and failure-handling clause.
func emitInvocation(node *ir.Node, funcName string) (string, error) {
	opts := node.Options()

	paramsLiteral, err := codegen.EncodeLiteral(node.Parameters)
	if err != nil {
		return "", fmt.Errorf("encode parameters: %w", err)
	}

	var b strings.Builder
	in := "        " // run() body indent
	fmt.Fprintf(&b, "%s# %s (%s)\n", in, node.Name, node.Type)
	b.WriteString(in + "try:\n")

	call := in + "    "
	b.WriteString(call + "result = await workflow.execute_activity(\n")
	fmt.Fprintf(&b, "%s    %q,\n", call, funcName)
	b.WriteString(call + "    ActivityInput(\n")
	fmt.Fprintf(&b, "%s        node_id=%q,\n", call, node.ID)
	fmt.Fprintf(&b, "%s        node_name=%q,\n", call, node.Name)
	fmt.Fprintf(&b, "%s        node_type=%q,\n", call, node.Type)
	fmt.Fprintf(&b, "%s        parameters=%s,\n", call, paramsLiteral)
	b.WriteString(call + "        input_data=result,\n")
	b.WriteString(call + "    ),\n")

	for _, line := range timeoutLines(opts) {
		b.WriteString(call + "    " + line + "\n")
	}
	for _, line := range retryLines(opts) {
		b.WriteString(call + "    " + line + "\n")
	}
	b.WriteString(call + ")\n")

	if opts.ContinueOnFail {
		b.WriteString(in + "except Exception as err:\n")
		fmt.Fprintf(&b, "%s    workflow.logger.warning(\"activity %s failed, continuing: %%s\", err)\n", in, funcName)
		b.WriteString(in + "    # continue_on_fail: keep the prior accumulated result\n")
	} else {
		b.WriteString(in + "except Exception as err:\n")
		fmt.Fprintf(&b, "%s    workflow.logger.error(\"activity %s failed: %%s\", err)\n", in, funcName)
		b.WriteString(in + "    raise\n")
	}
	return b.String(), nil
}

// timeoutLines builds the timeout keyword arguments. Start-to-close
// always present (default 300s); schedule-to-close and heartbeat only
// when positive.
func timeoutLines(opts ir.ActivityOptions) []string {
	startToClose := opts.StartToCloseTimeout
	if startToClose <= 0 {
		startToClose = ir.DefaultStartToCloseSeconds
	}
	lines := []string{
		fmt.Sprintf("start_to_close_timeout=timedelta(seconds=%d),", startToClose),
	}
	if opts.ScheduleToCloseTimeout > 0 {
		lines = append(lines,
			fmt.Sprintf("schedule_to_close_timeout=timedelta(seconds=%d),", opts.ScheduleToCloseTimeout))
	}
	if opts.HeartbeatTimeout > 0 {
		lines = append(lines,
			fmt.Sprintf("heartbeat_timeout=timedelta(seconds=%d),", opts.HeartbeatTimeout))
	}
	return lines
}

// retryLines builds the retry_policy keyword argument. Disabled retries
// become a single-attempt policy; otherwise absent fields take the
// documented defaults.
func retryLines(opts ir.ActivityOptions) []string {
	if opts.RetryDisabled {
		return []string{"retry_policy=RetryPolicy(maximum_attempts=1),"}
	}

	attempts := ir.DefaultMaxAttempts
	interval := ir.DefaultInitialInterval
	backoff := ir.DefaultBackoffCoefficient
	if rp := opts.RetryPolicy; rp != nil {
		if rp.MaxAttempts > 0 {
			attempts = rp.MaxAttempts
		}
		if rp.InitialInterval != "" {
			interval = rp.InitialInterval
		}
		if rp.BackoffCoefficient > 0 {
			backoff = rp.BackoffCoefficient
		}
	}

	seconds := intervalSeconds(interval)
	return []string{
		"retry_policy=RetryPolicy(",
		fmt.Sprintf("    maximum_attempts=%d,", attempts),
		fmt.Sprintf("    initial_interval=timedelta(seconds=%s),", seconds),
		fmt.Sprintf("    backoff_coefficient=%s,", formatCoefficient(backoff)),
		"),",
	}
}

// intervalSeconds renders a duration string as Python seconds. The
// validator has already vetted the format; an unparsable value at this
// point falls back to the default rather than corrupting output.
func intervalSeconds(interval string) string {
	d, err := time.ParseDuration(interval)
	if err != nil || d < 0 {
		d = time.Second
	}
	secs := d.Seconds()
	if secs == float64(int64(secs)) {
		return strconv.FormatInt(int64(secs), 10)
	}
	return strconv.FormatFloat(secs, 'g', -1, 64)
}

// formatCoefficient renders a backoff coefficient as a Python float
// literal.
func formatCoefficient(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
