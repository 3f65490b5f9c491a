package ir

// Version constants for the IR schema and the compiler.
const (
	// SchemaVersion is the current IR schema version. A Workflow carries
	// the version it was built against; the validator rejects versions
	// outside the supported range.
	SchemaVersion = "1.0"

	// CompilerVersion is the latchc compiler version.
	CompilerVersion = "0.3.0"
)

// SupportedVersions lists the IR schema versions this compiler accepts.
var SupportedVersions = map[string]bool{
	"1.0": true,
}
