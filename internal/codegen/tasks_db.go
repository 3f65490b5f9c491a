package codegen

import (
	"github.com/latchflow/latchc/internal/ir"
)

// Relational connector generators. Each one resolves connection details
// from parameters first and the connector's environment variables
// second, executes the configured query, and closes the connection on
// both success and failure paths. SELECTs are read-only; anything else
// writes, and the docstrings say so.

type postgresGenerator struct{}

func (postgresGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a SQL query against PostgreSQL via psycopg2.",
		"SELECT queries are read-only; DML/DDL queries modify the database.",
	}
	body := []string{
		paramOrEnv("host", "host", "POSTGRES_HOST", "localhost"),
		intParamOrEnv("port", "port", "POSTGRES_PORT", "5432"),
		paramOrEnv("user", "user", "POSTGRES_USER", "postgres"),
		paramOrEnv("password", "password", "POSTGRES_PASSWORD", ""),
		paramOrEnv("database", "database", "POSTGRES_DB", "postgres"),
		`query = params.get("query", "")`,
		"",
		"conn = psycopg2.connect(host=host, port=port, user=user, password=password, dbname=database)",
		"try:",
		"    with conn.cursor() as cur:",
		"        cur.execute(query)",
		"        if cur.description:",
		"            columns = [d[0] for d in cur.description]",
		"            result = [dict(zip(columns, row)) for row in cur.fetchall()]",
		"        else:",
		"            conn.commit()",
		"            result = {\"rowcount\": cur.rowcount}",
		"finally:",
		"    conn.close()",
		"",
		"return {**input.input_data, \"query_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}

type mysqlGenerator struct{}

func (mysqlGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a SQL query against MySQL via mysql-connector-python.",
		"SELECT queries are read-only; DML/DDL queries modify the database.",
	}
	body := []string{
		paramOrEnv("host", "host", "MYSQL_HOST", "localhost"),
		intParamOrEnv("port", "port", "MYSQL_PORT", "3306"),
		paramOrEnv("user", "user", "MYSQL_USER", "root"),
		paramOrEnv("password", "password", "MYSQL_PASSWORD", ""),
		paramOrEnv("database", "database", "MYSQL_DATABASE", "mysql"),
		`query = params.get("query", "")`,
		"",
		"conn = mysql.connector.connect(host=host, port=port, user=user, password=password, database=database)",
		"try:",
		"    cur = conn.cursor(dictionary=True)",
		"    try:",
		"        cur.execute(query)",
		"        if cur.with_rows:",
		"            result = cur.fetchall()",
		"        else:",
		"            conn.commit()",
		"            result = {\"rowcount\": cur.rowcount}",
		"    finally:",
		"        cur.close()",
		"finally:",
		"    conn.close()",
		"",
		"return {**input.input_data, \"query_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}

type oracleGenerator struct{}

func (oracleGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a SQL query against Oracle via python-oracledb (thin mode).",
		"SELECT queries are read-only; DML/DDL queries modify the database.",
	}
	body := []string{
		paramOrEnv("host", "host", "ORACLE_HOST", "localhost"),
		intParamOrEnv("port", "port", "ORACLE_PORT", "1521"),
		paramOrEnv("user", "user", "ORACLE_USER", "system"),
		paramOrEnv("password", "password", "ORACLE_PASSWORD", ""),
		paramOrEnv("service", "service", "ORACLE_SERVICE", "FREEPDB1"),
		`query = params.get("query", "")`,
		"",
		`dsn = f"{host}:{port}/{service}"`,
		"conn = oracledb.connect(user=user, password=password, dsn=dsn)",
		"try:",
		"    with conn.cursor() as cur:",
		"        cur.execute(query)",
		"        if cur.description:",
		"            columns = [d[0] for d in cur.description]",
		"            result = [dict(zip(columns, row)) for row in cur.fetchall()]",
		"        else:",
		"            conn.commit()",
		"            result = {\"rowcount\": cur.rowcount}",
		"finally:",
		"    conn.close()",
		"",
		"return {**input.input_data, \"query_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}

type cassandraGenerator struct{}

func (cassandraGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a CQL statement against Cassandra via cassandra-driver.",
		"SELECT statements are read-only; other statements modify the keyspace.",
	}
	body := []string{
		paramOrEnv("host", "host", "CASSANDRA_HOST", "localhost"),
		intParamOrEnv("port", "port", "CASSANDRA_PORT", "9042"),
		paramOrEnv("user", "user", "CASSANDRA_USER", "cassandra"),
		paramOrEnv("password", "password", "CASSANDRA_PASSWORD", "cassandra"),
		paramOrEnv("keyspace", "keyspace", "CASSANDRA_KEYSPACE", "system"),
		`query = params.get("query", "")`,
		"",
		"auth = PlainTextAuthProvider(username=user, password=password)",
		"cluster = Cluster([host], port=port, auth_provider=auth)",
		"try:",
		"    session = cluster.connect(keyspace)",
		"    rows = session.execute(query)",
		"    result = [dict(row._asdict()) for row in rows]",
		"finally:",
		"    cluster.shutdown()",
		"",
		"return {**input.input_data, \"query_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}

type snowflakeGenerator struct{}

func (snowflakeGenerator) EmitTask(node *ir.Node, funcName string) (string, error) {
	doc := []string{
		"Runs a SQL query against Snowflake via snowflake-connector-python.",
		"SELECT queries are read-only; DML/DDL queries modify the database.",
	}
	body := []string{
		paramOrEnv("account", "account", "SNOWFLAKE_ACCOUNT", ""),
		paramOrEnv("user", "user", "SNOWFLAKE_USER", ""),
		paramOrEnv("password", "password", "SNOWFLAKE_PASSWORD", ""),
		paramOrEnv("database", "database", "SNOWFLAKE_DATABASE", ""),
		paramOrEnv("warehouse", "warehouse", "SNOWFLAKE_WAREHOUSE", ""),
		`query = params.get("query", "")`,
		"",
		"conn = snowflake.connector.connect(account=account, user=user, password=password, database=database, warehouse=warehouse)",
		"try:",
		"    cur = conn.cursor(snowflake.connector.DictCursor)",
		"    try:",
		"        cur.execute(query)",
		"        result = cur.fetchall()",
		"    finally:",
		"        cur.close()",
		"finally:",
		"    conn.close()",
		"",
		"return {**input.input_data, \"query_result\": result}",
	}
	return emitTask(node, funcName, doc, body), nil
}
