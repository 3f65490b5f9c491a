// Package manifest derives deployment scaffolding from the set of node
// types present in a workflow: the Python dependency list, the
// environment-variable template, and container build and compose files.
//
// Everything here is a pure set-membership function: three nodes of the
// same connector type contribute exactly what one does, and a type with
// no known mapping contributes nothing.
package manifest

import (
	"fmt"
	"strings"

	"github.com/latchflow/latchc/internal/ir"
)

// EnvVar is one entry in the generated .env.example.
type EnvVar struct {
	Name    string
	Default string
}

// Rule maps one connector node type to its manifest contributions.
type Rule struct {
	Connector string   // node type string
	Category  string   // comment header in requirements.txt
	Pip       []string // pip requirement lines
	Apt       []string // system packages for the container build
	Env       []EnvVar // environment template entries
}

// rules is the connector rule table, in emission order. Order here is
// the order blocks appear in generated files, so it is part of the
// deterministic-output contract.
var rules = []Rule{
	{
		Connector: "postgres",
		Category:  "PostgreSQL",
		Pip:       []string{"psycopg2-binary>=2.9.0"},
		Apt:       []string{"gcc", "libpq-dev"},
		Env: []EnvVar{
			{"POSTGRES_HOST", "localhost"},
			{"POSTGRES_PORT", "5432"},
			{"POSTGRES_USER", "postgres"},
			{"POSTGRES_PASSWORD", ""},
			{"POSTGRES_DB", "postgres"},
		},
	},
	{
		Connector: "mysql",
		Category:  "MySQL",
		Pip:       []string{"mysql-connector-python>=8.3.0"},
		Env: []EnvVar{
			{"MYSQL_HOST", "localhost"},
			{"MYSQL_PORT", "3306"},
			{"MYSQL_USER", "root"},
			{"MYSQL_PASSWORD", ""},
			{"MYSQL_DATABASE", "mysql"},
		},
	},
	{
		Connector: "oracle",
		Category:  "Oracle",
		Pip:       []string{"oracledb>=2.0.0"},
		Apt:       []string{"libaio1"},
		Env: []EnvVar{
			{"ORACLE_HOST", "localhost"},
			{"ORACLE_PORT", "1521"},
			{"ORACLE_USER", "system"},
			{"ORACLE_PASSWORD", ""},
			{"ORACLE_SERVICE", "FREEPDB1"},
		},
	},
	{
		Connector: "cassandra",
		Category:  "Cassandra",
		Pip:       []string{"cassandra-driver>=3.29.0"},
		Apt:       []string{"gcc", "libev-dev"},
		Env: []EnvVar{
			{"CASSANDRA_HOST", "localhost"},
			{"CASSANDRA_PORT", "9042"},
			{"CASSANDRA_USER", "cassandra"},
			{"CASSANDRA_PASSWORD", "cassandra"},
			{"CASSANDRA_KEYSPACE", "system"},
		},
	},
	{
		Connector: "snowflake",
		Category:  "Snowflake",
		Pip:       []string{"snowflake-connector-python>=3.6.0"},
		Env: []EnvVar{
			{"SNOWFLAKE_ACCOUNT", ""},
			{"SNOWFLAKE_USER", ""},
			{"SNOWFLAKE_PASSWORD", ""},
			{"SNOWFLAKE_DATABASE", ""},
			{"SNOWFLAKE_WAREHOUSE", ""},
		},
	},
	{
		Connector: "redis",
		Category:  "Redis",
		Pip:       []string{"redis>=5.0.0"},
		Env: []EnvVar{
			{"REDIS_HOST", "localhost"},
			{"REDIS_PORT", "6379"},
			{"REDIS_PASSWORD", ""},
		},
	},
	{
		Connector: "mongodb",
		Category:  "MongoDB",
		Pip:       []string{"pymongo>=4.6.0"},
		Env: []EnvVar{
			{"MONGODB_HOST", "localhost"},
			{"MONGODB_PORT", "27017"},
			{"MONGODB_USER", ""},
			{"MONGODB_PASSWORD", ""},
			{"MONGODB_DATABASE", "test"},
		},
	},
	{
		// smtplib is stdlib; the rule only contributes the env group.
		Connector: "emailSend",
		Category:  "Email (SMTP)",
		Env: []EnvVar{
			{"SMTP_HOST", "localhost"},
			{"SMTP_PORT", "587"},
			{"SMTP_USER", ""},
			{"SMTP_PASSWORD", ""},
		},
	},
}

// credentialPrefix is the addressing convention for credential-reference
// node types: credential.<credentialType>.<credentialId>.
const credentialPrefix = "credential."

// DetectConnectors returns the set of connector type strings present in
// the workflow, including types embedded in credential-reference
// addressing, so a stored postgres credential pulls in the postgres
// driver even when no dedicated postgres node exists.
func DetectConnectors(w *ir.Workflow) map[string]bool {
	present := make(map[string]bool)
	for _, n := range w.Nodes {
		if strings.HasPrefix(n.Type, credentialPrefix) {
			rest := strings.TrimPrefix(n.Type, credentialPrefix)
			if credType, _, ok := strings.Cut(rest, "."); ok && credType != "" {
				present[credType] = true
			}
			continue
		}
		present[n.Type] = true
	}
	return present
}

// activeRules filters the rule table to connectors present, preserving
// table order.
func activeRules(present map[string]bool) []Rule {
	var out []Rule
	for _, r := range rules {
		if present[r.Connector] {
			out = append(out, r)
		}
	}
	return out
}

// Requirements generates requirements.txt: the fixed base stack plus one
// category-commented block per connector present.
func Requirements(w *ir.Workflow) string {
	var b strings.Builder
	b.WriteString("# Temporal SDK\n")
	b.WriteString("temporalio>=1.5.0\n")
	b.WriteString("\n# HTTP requests\n")
	b.WriteString("aiohttp>=3.9.0\n")
	b.WriteString("\n# Utilities\n")
	b.WriteString("python-dotenv>=1.0.0\n")

	for _, r := range activeRules(DetectConnectors(w)) {
		if len(r.Pip) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n# %s\n", r.Category)
		for _, req := range r.Pip {
			b.WriteString(req)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// EnvExample generates the .env.example template: the Temporal group
// plus one variable group per connector present, each filled with its
// conventional default.
func EnvExample(w *ir.Workflow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s configuration\n", w.Workflow.Name)
	b.WriteString("# Generated by latchc\n\n")
	b.WriteString("# Temporal\n")
	b.WriteString("TEMPORAL_HOST=localhost:7233\n")
	b.WriteString("TEMPORAL_NAMESPACE=default\n")
	b.WriteString("LOG_LEVEL=INFO\n")

	for _, r := range activeRules(DetectConnectors(w)) {
		fmt.Fprintf(&b, "\n# %s\n", r.Category)
		for _, env := range r.Env {
			fmt.Fprintf(&b, "%s=%s\n", env.Name, env.Default)
		}
	}
	return b.String()
}

// SystemPackages returns the deduplicated, order-stable apt package list
// for the connectors present. The list grows monotonically with detected
// connector needs.
func SystemPackages(w *ir.Workflow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range activeRules(DetectConnectors(w)) {
		for _, pkg := range r.Apt {
			if !seen[pkg] {
				seen[pkg] = true
				out = append(out, pkg)
			}
		}
	}
	return out
}
