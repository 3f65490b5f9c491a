// Package store persists workflow records in SQLite. The compiler
// itself never touches storage; the store exists for the CLI, which
// imports records, lists them, and loads them for export.
package store
