// Package codegen turns workflow nodes into Temporal Python task source.
//
// Dispatch is a type-keyed registry: each node type string maps to a
// Generator, and unrecognized types fall back to a passthrough stub so
// export never fails on an unknown connector. The trigger-type set is
// immutable configuration injected at registry construction.
//
// Generated tasks read their configuration from the invocation payload at
// run time and fall back to process environment variables per connector
// (POSTGRES_HOST, REDIS_PORT, SNOWFLAKE_WAREHOUSE, ...). Acquired
// connections are released on both success and failure paths.
package codegen
