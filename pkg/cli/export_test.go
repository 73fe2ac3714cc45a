package cli

var (
	RunWithAction = run
	WorkflowRun   = workflowRun
)
