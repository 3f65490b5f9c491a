package codegen

import (
	"github.com/latchflow/latchc/internal/ir"
)

type emailGenerator struct{}

func (emailGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Sends an email via SMTP.",
		"Sending mail is a side effect; retries may deliver duplicates.",
	}
	body := []string{
		paramOrEnv("host", "smtpHost", "SMTP_HOST", "localhost"),
		intParamOrEnv("port", "smtpPort", "SMTP_PORT", "587"),
		paramOrEnv("user", "smtpUser", "SMTP_USER", ""),
		paramOrEnv("password", "smtpPassword", "SMTP_PASSWORD", ""),
		`sender = params.get("from", user)`,
		`recipients = params.get("to") or []`,
		"if isinstance(recipients, str):",
		"    recipients = [recipients]",
		"",
		"message = EmailMessage()",
		`message["Subject"] = params.get("subject", "")`,
		`message["From"] = sender`,
		`message["To"] = ", ".join(recipients)`,
		`message.set_content(str(params.get("text", "")))`,
		"",
		"server = smtplib.SMTP(host, port)",
		"try:",
		"    server.starttls()",
		"    if user:",
		"        server.login(user, password)",
		"    server.send_message(message)",
		"finally:",
		"    server.quit()",
		"",
		"return {**input.input_data, \"email_sent\": {\"to\": recipients}}",
	}
	return emitTask(node, funcName, doc, body), nil
}

// setGenerator merges the node's configured values into the accumulated
// result. Read-only with respect to external systems.
type setGenerator struct{}

func (setGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{"Merges configured values into the accumulated result."}
	body := []string{
		`values = params.get("values") or {}`,
		"return {**input.input_data, **values}",
	}
	return emitTask(node, funcName, doc, body), nil
}

// codeGenerator runs a user-supplied Python snippet. The snippet decides
// its own side effects; the generated code only provides the sandbox
// dict and captures the returned result.
type codeGenerator struct{}

func (codeGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Executes the user-supplied Python snippet from parameters.",
		"The snippet may have arbitrary side effects.",
	}
	body := []string{
		`source = params.get("code", "")`,
		`scope = {"input_data": dict(input.input_data), "result": None}`,
		"exec(source, scope)  # noqa: S102 - user-authored workflow code",
		`result = scope.get("result")`,
		"if result is None:",
		`    result = scope.get("input_data")`,
		"return {**input.input_data, \"code_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}

// ifGenerator evaluates the node's condition and records the branch
// decision. Nothing consumes the decision yet: orchestration is a
// straight sequence, and branch-aware scheduling is an extension point.
type ifGenerator struct{}

func (ifGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Evaluates a comparison and records the branch decision.",
		"The decision is carried in the result; downstream scheduling does not act on it.",
	}
	body := []string{
		`left = input.input_data.get(str(params.get("field", "")), params.get("left"))`,
		`right = params.get("value", params.get("right"))`,
		`op = str(params.get("operation", "equals"))`,
		"",
		"if op == \"notEquals\":",
		"    branch = left != right",
		"elif op == \"contains\":",
		"    branch = right in (left or \"\")",
		"elif op == \"greaterThan\":",
		"    branch = left is not None and right is not None and left > right",
		"elif op == \"lessThan\":",
		"    branch = left is not None and right is not None and left < right",
		"else:",
		"    branch = left == right",
		"",
		"return {**input.input_data, \"branch\": bool(branch)}",
	}
	return emitTask(node, funcName, doc, body), nil
}

type waitGenerator struct{}

func (waitGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{"Sleeps for the configured number of seconds. Idempotent."}
	body := []string{
		`seconds = float(params.get("seconds", 1))`,
		"await asyncio.sleep(seconds)",
		"return {**input.input_data, \"waited\": seconds}",
	}
	return emitTask(node, funcName, doc, body), nil
}
