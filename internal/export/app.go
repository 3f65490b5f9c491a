package export

import (
	"fmt"
	"strings"

	"github.com/latchflow/latchc/internal/codegen"
	"github.com/latchflow/latchc/internal/ir"
)

// EmitWorkerFile produces worker.py: the process that polls the task
// queue and executes the workflow and its activities.
func EmitWorkerFile(reg *codegen.Registry, w *ir.Workflow) string {
	activities := reg.Activities(w)
	names := funcNames(activities)
	class := className(w.Workflow.Name)
	queue := taskQueue(w)

	var b strings.Builder
	b.WriteString(`"""
Worker for ` + w.Workflow.Name + `.

Starts a Temporal worker that listens on the task queue and executes the
workflow and its activities.
"""
import asyncio
import logging
import os
import sys

from temporalio.client import Client
from temporalio.worker import Worker

`)
	fmt.Fprintf(&b, "from workflow import %s\n", class)
	if len(names) > 0 {
		b.WriteString("from activities import (\n")
		for _, n := range names {
			fmt.Fprintf(&b, "    %s,\n", n)
		}
		b.WriteString(")\n")
	}
	b.WriteString(`
logging.basicConfig(
    level=os.environ.get("LOG_LEVEL", "INFO").upper(),
    format="%(asctime)s - %(name)s - %(levelname)s - %(message)s",
)
logger = logging.getLogger("worker")

TEMPORAL_HOST = os.environ.get("TEMPORAL_HOST", "localhost:7233")
TEMPORAL_NAMESPACE = os.environ.get("TEMPORAL_NAMESPACE", "default")
`)
	fmt.Fprintf(&b, "TASK_QUEUE = %q\n", queue)
	b.WriteString(`

async def main():
    logger.info("starting worker for task queue: %s", TASK_QUEUE)
    logger.info("connecting to Temporal server at %s", TEMPORAL_HOST)

    try:
        client = await Client.connect(TEMPORAL_HOST, namespace=TEMPORAL_NAMESPACE)
    except Exception as err:
        logger.error("failed to connect to Temporal server: %s", err)
        sys.exit(1)

    worker = Worker(
        client,
        task_queue=TASK_QUEUE,
`)
	fmt.Fprintf(&b, "        workflows=[%s],\n", class)
	b.WriteString("        activities=[\n")
	for _, n := range names {
		fmt.Fprintf(&b, "            %s,\n", n)
	}
	b.WriteString(`        ],
    )

    logger.info("worker started, waiting for tasks")
    try:
        await worker.run()
    except asyncio.CancelledError:
        logger.info("worker stopped")


if __name__ == "__main__":
    try:
        asyncio.run(main())
    except KeyboardInterrupt:
        logger.info("interrupt received, shutting down")
`)
	return b.String()
}

// EmitStarterFile produces starter.py: a one-shot script that starts a
// workflow execution and optionally waits for the result.
func EmitStarterFile(w *ir.Workflow) string {
	class := className(w.Workflow.Name)
	queue := taskQueue(w)

	var b strings.Builder
	b.WriteString(`"""
Start ` + w.Workflow.Name + `.

Connects to Temporal and starts a workflow execution.
"""
import argparse
import asyncio
import json
import logging
import os
import sys
import uuid
`)
	if w.Workflow.Timeout > 0 {
		b.WriteString("from datetime import timedelta\n")
	}
	b.WriteString(`
from dotenv import load_dotenv
from temporalio.client import Client

`)
	fmt.Fprintf(&b, "from workflow import %s\n", class)
	b.WriteString(`
load_dotenv()

`)
	fmt.Fprintf(&b, "TASK_QUEUE = %q\n", queue)
	b.WriteString(`
logging.basicConfig(
    level=logging.INFO,
    format="%(asctime)s - %(name)s - %(levelname)s - %(message)s",
)
logger = logging.getLogger(TASK_QUEUE)


async def start_workflow(input_data=None, wait_for_result=True, workflow_id=None):
    temporal_host = os.environ.get("TEMPORAL_HOST", "localhost:7233")
    namespace = os.environ.get("TEMPORAL_NAMESPACE", "default")

    logger.info("Temporal server: %s, namespace: %s, task queue: %s",
                temporal_host, namespace, TASK_QUEUE)

    try:
        client = await Client.connect(temporal_host, namespace=namespace)
    except Exception as err:
        logger.error("failed to connect to Temporal server: %s", err)
        sys.exit(1)

    if not workflow_id:
        workflow_id = f"{TASK_QUEUE}-{uuid.uuid4().hex[:8]}"

    logger.info("workflow id: %s", workflow_id)
    logger.info("input data: %s", json.dumps(input_data, default=str))

    handle = await client.start_workflow(
`)
	fmt.Fprintf(&b, "        %s.run,\n", class)
	b.WriteString(`        id=workflow_id,
        task_queue=TASK_QUEUE,
        arg=input_data or {},
`)
	if w.Workflow.Timeout > 0 {
		fmt.Fprintf(&b, "        execution_timeout=timedelta(seconds=%d),\n", w.Workflow.Timeout)
	}
	b.WriteString(`    )

    logger.info("workflow started")
    logger.info("view in Temporal UI: http://localhost:8080/namespaces/%s/workflows/%s",
                namespace, workflow_id)

    if wait_for_result:
        result = await handle.result()
        logger.info("workflow completed: %s", json.dumps(result, indent=2, default=str))
        return result
    return {"workflow_id": workflow_id, "status": "started"}


async def main():
    parser = argparse.ArgumentParser(description="Start the workflow")
    parser.add_argument("--input", "-i", type=str, default="{}", help="JSON input data")
    parser.add_argument("--id", type=str, default=None, help="custom workflow id")
    parser.add_argument("--no-wait", action="store_true", help="start without waiting")
    args = parser.parse_args()

    try:
        input_data = json.loads(args.input)
    except json.JSONDecodeError as err:
        logger.error("invalid JSON input: %s", err)
        sys.exit(1)

    await start_workflow(
        input_data=input_data,
        wait_for_result=not args.no_wait,
        workflow_id=args.id,
    )


if __name__ == "__main__":
    asyncio.run(main())
`)
	return b.String()
}

// EmitReadme produces the human-readable usage guide.
func EmitReadme(w *ir.Workflow) string {
	queue := taskQueue(w)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", w.Workflow.Name)
	if w.Workflow.Description != "" {
		b.WriteString(w.Workflow.Description + "\n\n")
	} else {
		b.WriteString("A Temporal workflow generated by latchc.\n\n")
	}
	b.WriteString(`## Quick start

` + "```bash" + `
# Configure environment
cp .env.example .env

# Install dependencies
pip install -r requirements.txt

# Start Temporal (if not running)
temporal server start-dev

# Start the worker
python worker.py

# In another terminal, start a workflow
python starter.py
` + "```" + `

Or bring everything up with Docker:

` + "```bash" + `
./run.sh up
` + "```" + `

## Files

| File | Description |
|------|-------------|
| ` + "`workflow.py`" + ` | Workflow definition |
| ` + "`activities.py`" + ` | Activity implementations |
| ` + "`worker.py`" + ` | Worker that executes workflows |
| ` + "`starter.py`" + ` | Script to start workflow executions |
| ` + "`requirements.txt`" + ` | Python dependencies |
| ` + "`docker-compose.yml`" + ` | Worker + Temporal + UI services |
| ` + "`run.sh`" + ` | Helper operations script |

## Task queue

This workflow uses task queue: ` + "`" + queue + "`" + `

## Temporal UI

Access at: http://localhost:8080
`)
	return b.String()
}
