package serialize

// Legacy records can hold the same logical value in more than one field.
// Each ambiguity is resolved by an ordered extractor list: candidates are
// evaluated in order and the first defined source wins. The lists below
// are the documented priority order; changing the order changes the
// serializer's contract.

// stringSource is one candidate location for a node-level string value.
type stringSource struct {
	field string
	get   func(*RawNode) (string, bool)
}

// paramsSource is one candidate location for a node's parameter tree.
type paramsSource struct {
	field string
	get   func(*RawNode) (map[string]any, bool)
}

// nameSources: displayName was introduced by the visual editor, label by
// an earlier import path, name is the original column. Priority:
// displayName > label > name.
var nameSources = []stringSource{
	{"displayName", func(n *RawNode) (string, bool) { return n.DisplayName, n.DisplayName != "" }},
	{"label", func(n *RawNode) (string, bool) { return n.Label, n.Label != "" }},
	{"name", func(n *RawNode) (string, bool) { return n.Name, n.Name != "" }},
}

// parameterSources: parameters is the current column, config the
// pre-rename one. Priority: parameters > config.
var parameterSources = []paramsSource{
	{"parameters", func(n *RawNode) (map[string]any, bool) { return n.Parameters, n.Parameters != nil }},
	{"config", func(n *RawNode) (map[string]any, bool) { return n.Config, n.Config != nil }},
}

func extractName(n *RawNode) string {
	for _, src := range nameSources {
		if v, ok := src.get(n); ok {
			return v
		}
	}
	return ""
}

func extractParameters(n *RawNode) map[string]any {
	for _, src := range parameterSources {
		if v, ok := src.get(n); ok {
			return v
		}
	}
	return nil
}

// hasActivityOptions reports whether at least one option field is defined
// on the raw node. Plain nodes must not grow an empty option block on the
// IR side.
func hasActivityOptions(n *RawNode) bool {
	return n.Timeout != nil ||
		n.ScheduleToCloseTimeout != nil ||
		n.HeartbeatTimeout != nil ||
		n.ContinueOnFail != nil ||
		n.RetryOnFail != nil ||
		n.MaxRetries != nil ||
		n.BackoffCoefficient != nil ||
		n.RetryInterval != nil
}

// hasRetryPolicyFields reports whether any per-node retry tuning field is
// defined (independent of the retryOnFail switch).
func hasRetryPolicyFields(n *RawNode) bool {
	return n.MaxRetries != nil || n.BackoffCoefficient != nil || n.RetryInterval != nil
}
