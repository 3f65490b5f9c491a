package codegen

import (
	"github.com/latchflow/latchc/internal/ir"
)

// httpRequestGenerator emits an aiohttp request task. Read-only for GET;
// other methods can have remote side effects, which the docstring calls
// out.
type httpRequestGenerator struct{}

func (httpRequestGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Performs an HTTP request with aiohttp.",
		"GET requests are idempotent; other methods may have remote side effects.",
	}
	body := []string{
		`url = params.get("url", "")`,
		`method = str(params.get("method", "GET")).upper()`,
		`headers = params.get("headers") or {}`,
		`payload = params.get("body")`,
		`timeout = aiohttp.ClientTimeout(total=float(params.get("timeout") or get_env("HTTP_TIMEOUT", "30")))`,
		"",
		"session = aiohttp.ClientSession(timeout=timeout)",
		"try:",
		"    async with session.request(method, url, headers=headers, json=payload) as response:",
		"        try:",
		"            data = await response.json(content_type=None)",
		"        except ValueError:",
		"            data = await response.text()",
		"        result = {\"status\": response.status, \"body\": data}",
		"finally:",
		"    await session.close()",
		"",
		"return {**input.input_data, \"http_response\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}
