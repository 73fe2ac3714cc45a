package usecase

// ParseMergeQueuePRNumber is exported for testing
var ParseMergeQueuePRNumber = parseMergeQueuePRNumber
