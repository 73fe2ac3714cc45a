package types

import "github.com/m-mizutani/goerr/v2"

// ErrInvalidJobStatus is returned for a status outside success, failure and cancelled
var ErrInvalidJobStatus = goerr.New("unexpected job status")

// JobStatus is the terminal classification of a workflow job.
// See https://docs.github.com/en/actions/learn-github-actions/contexts#job-context
type JobStatus string

const (
	JobStatusSuccess   JobStatus = "success"
	JobStatusFailure   JobStatus = "failure"
	JobStatusCancelled JobStatus = "cancelled"
)

// AllJobStatuses returns all valid job statuses
func AllJobStatuses() []JobStatus {
	return []JobStatus{
		JobStatusSuccess,
		JobStatusFailure,
		JobStatusCancelled,
	}
}

// IsValid checks if the job status is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusSuccess,
		JobStatusFailure,
		JobStatusCancelled:
		return true
	default:
		return false
	}
}

// IsSuccessful reports whether the job succeeded
func (s JobStatus) IsSuccessful() bool {
	return s == JobStatusSuccess
}

func (s JobStatus) String() string {
	return string(s)
}

// ParseJobStatus parses a step input into a JobStatus
func ParseJobStatus(s string) (JobStatus, error) {
	status := JobStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidJobStatus, "invalid job status", goerr.V("status", s))
	}
	return status, nil
}
