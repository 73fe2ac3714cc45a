package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrMergeQueueResolution is returned when the human behind a merge queue push cannot be determined
	ErrMergeQueueResolution = errors.New("failed to resolve merge queue pull request merger")

	// ErrStatusRequired is returned when a thread is given without a job status
	ErrStatusRequired = errors.New("status input is required when thread_ts is set")
)

// Context keys for error values
const (
	ThreadTSKey = "thread_ts"
	StatusKey   = "status"
	ChannelKey  = "channel"
)
