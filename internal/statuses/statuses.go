package statuses

const (
	StatusInProgress = "in_progress"
	StatusTerminated = "terminated"
)

const (
	ReasonDoublePass  = "double_pass"
	ReasonResignation = "resignation"
)
