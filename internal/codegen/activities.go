package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/latchflow/latchc/internal/ir"
)

// connectorImports maps node types to the Python import lines their
// generated task bodies need. Membership-driven: one node of a type is
// enough, a hundred add nothing.
var connectorImports = map[string][]string{
	"httpRequest": {"import aiohttp"},
	"postgres":    {"import psycopg2"},
	"mysql":       {"import mysql.connector"},
	"oracle":      {"import oracledb"},
	"cassandra": {
		"from cassandra.auth import PlainTextAuthProvider",
		"from cassandra.cluster import Cluster",
	},
	"snowflake": {"import snowflake.connector"},
	"redis":     {"import redis"},
	"mongodb":   {"import pymongo"},
	"emailSend": {
		"import smtplib",
		"from email.message import EmailMessage",
	},
	"wait": {"import asyncio"},
}

// EmitActivitiesFile assembles activities.py: module docstring, imports
// for the connector set actually present, the ActivityInput payload
// type, and one task function per activity node in list order.
// funcNames must be parallel to activities.
func EmitActivitiesFile(reg *Registry, workflowName string, activities []ir.Node, funcNames []string) (string, error) {
	if len(activities) != len(funcNames) {
		return "", fmt.Errorf("activities and funcNames length mismatch: %d != %d", len(activities), len(funcNames))
	}

	var b strings.Builder
	b.WriteString(`"""` + "\n")
	fmt.Fprintf(&b, "Activity implementations for %s.\n", pyComment(workflowName))
	b.WriteString(`
Each activity reads its configuration from the invocation payload at run
time; connection details fall back to environment variables. Retry
policies and timeouts are owned by the workflow definition, not the
activities.
"""
import json
import os
from dataclasses import dataclass, field
from typing import Any, Dict

from temporalio import activity
`)

	if imports := importsFor(activities); len(imports) > 0 {
		b.WriteString("\n")
		for _, line := range imports {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(`

def get_env(key: str, default: str = "") -> str:
    """Read an environment variable with a default."""
    return os.environ.get(key, default)


@dataclass
class ActivityInput:
    """Per-invocation payload passed from the workflow to an activity."""

    node_id: str
    node_name: str
    node_type: str
    parameters: Dict[str, Any] = field(default_factory=dict)
    input_data: Dict[str, Any] = field(default_factory=dict)
`)

	for i := range activities {
		node := &activities[i]
		task, err := reg.Generator(node.Type).EmitTask(node, funcNames[i])
		if err != nil {
			return "", fmt.Errorf("emit task for node %q (type %s): %w", node.ID, node.Type, err)
		}
		b.WriteString("\n\n")
		b.WriteString(task)
	}

	return b.String(), nil
}

// importsFor collects the deduplicated, sorted import lines for the node
// types present.
func importsFor(activities []ir.Node) []string {
	seen := make(map[string]bool)
	for _, n := range activities {
		for _, line := range connectorImports[n.Type] {
			seen[line] = true
		}
	}
	out := make([]string, 0, len(seen))
	for line := range seen {
		out = append(out, line)
	}
	sort.Strings(out)
	return out
}
