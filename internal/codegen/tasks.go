package codegen

import (
	"fmt"
	"strings"

	"github.com/latchflow/latchc/internal/ir"
)

// emitTask assembles the activity function envelope shared by every
// generator: decorator, signature, docstring, parameter binding, and an
// execution log line. body lines carry their own relative indentation
// and are placed inside the function.
func emitTask(node *ir.Node, funcName string, doc []string, body []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "@activity.defn(name=%s)\n", encodeString(funcName))
	fmt.Fprintf(&b, "async def %s(input: ActivityInput) -> Dict[str, Any]:\n", funcName)

	b.WriteString(`    """`)
	fmt.Fprintf(&b, "%s (%s).", node.Name, node.Type)
	if len(doc) > 0 {
		b.WriteString("\n")
		for _, line := range doc {
			b.WriteString("\n    ")
			b.WriteString(line)
		}
		b.WriteString("\n    ")
	}
	b.WriteString("\"\"\"\n")

	b.WriteString("    params = input.parameters\n")
	fmt.Fprintf(&b, "    activity.logger.info(\"[%%s] executing %s task\", input.node_name)\n", node.Type)

	for _, line := range body {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// paramOrEnv emits a Python binding that reads a parameter at run time
// and falls back to the connector's environment variable, then to a
// default. Example output:
//
//	host = params.get("host") or get_env("POSTGRES_HOST", "localhost")
func paramOrEnv(pyVar, param, envVar, defaultVal string) string {
	return fmt.Sprintf("%s = params.get(%s) or get_env(%s, %s)",
		pyVar, encodeString(param), encodeString(envVar), encodeString(defaultVal))
}

// intParamOrEnv is paramOrEnv with an int() coercion, for ports.
func intParamOrEnv(pyVar, param, envVar, defaultVal string) string {
	return fmt.Sprintf("%s = int(params.get(%s) or get_env(%s, %s))",
		pyVar, encodeString(param), encodeString(envVar), encodeString(defaultVal))
}

// passthroughGenerator is the fallback for unrecognized node types. It
// logs the execution and returns its input unchanged. Degrading instead
// of failing keeps export available when the taxonomy grows faster than
// the generator table.
type passthroughGenerator struct{}

func (passthroughGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		fmt.Sprintf("NOT YET IMPLEMENTED: no generator for node type %q.", node.Type),
		"This stub passes its input through unchanged.",
	}
	body := []string{
		fmt.Sprintf("# Node type %s is not yet implemented; passing input through.", pyComment(node.Type)),
		fmt.Sprintf("activity.logger.warning(\"[%%s] node type %s not implemented, passing through\", input.node_name)", pyComment(node.Type)),
		"return input.input_data",
	}
	return emitTask(node, funcName, doc, body), nil
}

// pyComment strips newlines from a value interpolated into generated
// comments and log strings, so a hostile type string cannot break out of
// the line.
func pyComment(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, `"`, "'")
	return s
}
