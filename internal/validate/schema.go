package validate

// workflowSchema is the CUE definition of the IR's serialized shape.
// It gates the structural checks: a value that does not unify with
// #Workflow never reaches the rule-based validators. Field names match
// the IR's JSON tags.
const workflowSchema = `
#Workflow: {
	version: string
	workflow: #Metadata
	nodes: [...#Node] | null
	connections: [...#Connection] | null
	...
}

#Metadata: {
	id:            string
	name:          string
	description?:  string
	tags?:         [...string] | null
	task_queue?:   string
	timeout?:      int
	retry_policy?: #RetryPolicy
	...
}

#Node: {
	id:   string
	type: string
	name: string
	position?: [...number] | null
	parameters?:  {...} | null
	credentials?: {...} | null
	activity_options?: #ActivityOptions
	...
}

#ActivityOptions: {
	start_to_close_timeout?:    int
	schedule_to_close_timeout?: int
	heartbeat_timeout?:         int
	continue_on_fail?:          bool
	retry_disabled?:            bool
	retry_policy?:              #RetryPolicy
	...
}

#RetryPolicy: {
	max_attempts?:        int
	backoff_coefficient?: number
	initial_interval?:    string
	...
}

#Connection: {
	source: string
	target: string
	source_handle?: string
	target_handle?: string
	condition?:     string
	...
}
`
