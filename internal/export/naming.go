package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/latchflow/latchc/internal/ir"
)

// slug lowercases a name and squeezes every non-alphanumeric run into a
// single underscore. Used for task-queue and function-name derivation.
func slug(s string) string {
	var b strings.Builder
	lastUnderscore := true // trim leading separators
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) && r < 0x80 || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "workflow"
	}
	return out
}

// Slug is the exported form of slug for callers that derive output
// paths from workflow names.
func Slug(s string) string { return slug(s) }

// className derives the Python workflow class name: CamelCase of the
// workflow name with a Workflow suffix.
func className(name string) string {
	parts := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(unicode.IsLetter(r) && r < 0x80 || unicode.IsDigit(r))
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		b.WriteString("Generated")
	}
	b.WriteString("Workflow")
	return b.String()
}

// taskQueue returns the workflow's task queue: the explicit setting when
// present, otherwise the slug of the workflow name.
func taskQueue(w *ir.Workflow) string {
	if w.Workflow.TaskQueue != "" {
		return w.Workflow.TaskQueue
	}
	return slug(w.Workflow.Name)
}

// funcNames derives one activity function name per activity node, in
// list order. The positional index keeps names unique even when node
// names collide.
func funcNames(activities []ir.Node) []string {
	names := make([]string, len(activities))
	for i, n := range activities {
		base := n.Name
		if base == "" {
			base = n.Type
		}
		names[i] = fmt.Sprintf("node_%d_%s", i+1, slug(base))
	}
	return names
}
