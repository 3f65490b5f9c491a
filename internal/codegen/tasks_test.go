package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchflow/latchc/internal/ir"
)

func emit(t *testing.T, typ string) string {
	t.Helper()
	reg := NewRegistry()
	node := &ir.Node{ID: "n1", Type: typ, Name: "Node"}
	src, err := reg.Generator(typ).EmitTask(node, "node_1_node")
	require.NoError(t, err)
	return src
}

func TestHTTPRequestTask(t *testing.T) {
	src := emit(t, "httpRequest")

	assert.Contains(t, src, "aiohttp.ClientSession")
	assert.Contains(t, src, `params.get("url", "")`)
	assert.Contains(t, src, `"http_response"`)
	// The session is closed on every path.
	assert.Contains(t, src, "finally:")
	assert.Contains(t, src, "await session.close()")
}

func TestPostgresTaskEnvFallbacks(t *testing.T) {
	src := emit(t, "postgres")

	assert.Contains(t, src, "psycopg2.connect")
	assert.Contains(t, src, `get_env("POSTGRES_HOST", "localhost")`)
	assert.Contains(t, src, `get_env("POSTGRES_PORT", "5432")`)
	assert.Contains(t, src, "conn.close()")
}

func TestOracleTaskUsesServiceName(t *testing.T) {
	src := emit(t, "oracle")

	assert.Contains(t, src, "oracledb.connect")
	assert.Contains(t, src, `get_env("ORACLE_SERVICE", "FREEPDB1")`)
}

func TestCassandraTaskUsesKeyspace(t *testing.T) {
	src := emit(t, "cassandra")

	assert.Contains(t, src, "PlainTextAuthProvider")
	assert.Contains(t, src, `get_env("CASSANDRA_KEYSPACE", "system")`)
}

func TestSnowflakeTaskUsesWarehouse(t *testing.T) {
	src := emit(t, "snowflake")

	assert.Contains(t, src, "snowflake.connector.connect")
	assert.Contains(t, src, "SNOWFLAKE_WAREHOUSE")
}

func TestEmailTaskSMTP(t *testing.T) {
	src := emit(t, "emailSend")

	assert.Contains(t, src, "smtplib.SMTP")
	assert.Contains(t, src, "server.starttls()")
	assert.Contains(t, src, `get_env("SMTP_PORT", "587")`)
}

func TestSetTaskMergesValues(t *testing.T) {
	src := emit(t, "set")

	assert.Contains(t, src, `params.get("values") or {}`)
	assert.Contains(t, src, "return {**input.input_data, **values}")
}

func TestIfTaskRecordsBranch(t *testing.T) {
	src := emit(t, "if")

	assert.Contains(t, src, `"branch"`)
	assert.Contains(t, src, "notEquals")
	assert.Contains(t, src, "greaterThan")
}

func TestWaitTaskSleeps(t *testing.T) {
	src := emit(t, "wait")

	assert.Contains(t, src, "await asyncio.sleep(seconds)")
}

func TestCodeTaskExecsSnippet(t *testing.T) {
	src := emit(t, "code")

	assert.Contains(t, src, "exec(source, scope)")
	assert.Contains(t, src, `"code_result"`)
}

func TestParamOrEnvHelpers(t *testing.T) {
	assert.Equal(t,
		`host = params.get("host") or get_env("POSTGRES_HOST", "localhost")`,
		paramOrEnv("host", "host", "POSTGRES_HOST", "localhost"))
	assert.Equal(t,
		`port = int(params.get("port") or get_env("POSTGRES_PORT", "5432"))`,
		intParamOrEnv("port", "port", "POSTGRES_PORT", "5432"))
}
