package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/latchflow/latchc/internal/serialize"
	"github.com/latchflow/latchc/internal/store"
)

// loadRecord resolves a workflow source argument. A path that exists on
// disk is decoded as a JSON or YAML workflow file; anything else is
// treated as a record id in the local store.
func loadRecord(ctx context.Context, opts *RootOptions, source string) (*serialize.Record, error) {
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		return loadRecordFile(source)
	}
	return loadRecordStore(ctx, opts, source)
}

func loadRecordFile(path string) (*serialize.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read workflow file", err)
	}

	var rec *serialize.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		rec, err = serialize.DecodeYAML(data)
	default:
		rec, err = serialize.DecodeJSON(data)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("decode %s", path), err)
	}
	return rec, nil
}

func loadRecordStore(ctx context.Context, opts *RootOptions, id string) (*serialize.Record, error) {
	st, err := store.Open(opts.Config.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open workflow store", err)
	}
	defer st.Close()

	rec, err := st.GetRecord(ctx, id)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load workflow record", err)
	}
	return rec, nil
}
