package slack

// Export internal functions and types for testing
var (
	// BuildBlocks is exported for testing the message layout
	BuildBlocks = buildBlocks
)
