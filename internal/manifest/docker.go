package manifest

import (
	"fmt"
	"strings"

	"github.com/latchflow/latchc/internal/ir"
)

// Dockerfile generates the worker container build. The system-package
// list grows with the connectors present; the base always carries the
// toolchain needed by temporalio wheels.
func Dockerfile(w *ir.Workflow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dockerfile for %s\n", w.Workflow.Name)
	b.WriteString("# Generated by latchc\n\n")
	b.WriteString("FROM python:3.11-slim\n\n")
	b.WriteString("WORKDIR /app\n\n")

	packages := append([]string{"gcc", "libffi-dev"}, SystemPackages(w)...)
	packages = dedupe(packages)
	b.WriteString("RUN apt-get update && apt-get install -y --no-install-recommends \\\n")
	fmt.Fprintf(&b, "    %s \\\n", strings.Join(packages, " "))
	b.WriteString("    && rm -rf /var/lib/apt/lists/*\n\n")

	b.WriteString("COPY requirements.txt .\n")
	b.WriteString("RUN pip install --no-cache-dir -r requirements.txt\n\n")
	b.WriteString("COPY . .\n\n")
	b.WriteString("ENV PYTHONUNBUFFERED=1\n")
	b.WriteString("ENV TEMPORAL_HOST=temporal:7233\n")
	b.WriteString("ENV TEMPORAL_NAMESPACE=default\n\n")
	b.WriteString("CMD [\"python\", \"worker.py\"]\n")
	return b.String()
}

// DockerCompose generates the multi-service deployment descriptor: the
// worker, a dev-mode Temporal server, and the Temporal UI.
func DockerCompose(w *ir.Workflow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Docker Compose for %s\n", w.Workflow.Name)
	b.WriteString("# Generated by latchc\n\n")
	b.WriteString(`services:
  worker:
    build: .
    restart: unless-stopped
    depends_on:
      - temporal
    env_file:
      - .env
    environment:
      - TEMPORAL_HOST=temporal:7233
      - TEMPORAL_NAMESPACE=${TEMPORAL_NAMESPACE:-default}

  temporal:
    image: temporalio/auto-setup:1.24
    restart: unless-stopped
    ports:
      - "7233:7233"
    environment:
      - DB=sqlite

  temporal-ui:
    image: temporalio/ui:2.26.2
    restart: unless-stopped
    depends_on:
      - temporal
    ports:
      - "8080:8080"
    environment:
      - TEMPORAL_ADDRESS=temporal:7233
`)
	return b.String()
}

// DockerIgnore generates the build-exclusion list.
func DockerIgnore() string {
	return `.env
.git
__pycache__/
*.pyc
*.pyo
.venv/
venv/
.pytest_cache/
README.md
`
}

// RunScript generates the helper operations script: install, worker,
// start, and compose shortcuts.
func RunScript(w *ir.Workflow, taskQueue string) string {
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\n")
	fmt.Fprintf(&b, "# Helper operations for %s (task queue: %s)\n", w.Workflow.Name, taskQueue)
	b.WriteString("# Generated by latchc\n")
	b.WriteString(`set -euo pipefail

cmd="${1:-help}"

case "$cmd" in
  install)
    pip install -r requirements.txt
    ;;
  worker)
    python worker.py
    ;;
  start)
    shift
    python starter.py "$@"
    ;;
  up)
    docker compose up --build -d
    ;;
  down)
    docker compose down
    ;;
  *)
    echo "usage: $0 {install|worker|start|up|down}"
    exit 1
    ;;
esac
`)
	return b.String()
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
