package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertArtifacts compares the named artifacts of a result against
// golden files. Each artifact is stored as
// testdata/golden/{scenario}_{artifact}.golden, with path separators in
// the artifact name flattened.
func AssertArtifacts(t *testing.T, scenarioName string, result *Result, artifacts ...string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, name := range artifacts {
		content, ok := result.Files[name]
		if !ok {
			t.Fatalf("scenario %q: artifact %q not generated", scenarioName, name)
		}
		g.Assert(t, fmt.Sprintf("%s_%s", scenarioName, flatten(name)), []byte(content))
	}
}

// flatten maps an artifact file name to a golden-file-safe fragment.
func flatten(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '/', '.':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
