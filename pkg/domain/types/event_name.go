package types

import (
	"fmt"
	"strings"
)

// EventName is the name of the event that triggered the workflow
type EventName string

const (
	EventPullRequest      EventName = "pull_request"
	EventPush             EventName = "push"
	EventRelease          EventName = "release"
	EventSchedule         EventName = "schedule"
	EventWorkflowDispatch EventName = "workflow_dispatch"
)

// SupportedEventNames returns all supported trigger events, in display order
func SupportedEventNames() []EventName {
	return []EventName{
		EventPullRequest,
		EventPush,
		EventRelease,
		EventSchedule,
		EventWorkflowDispatch,
	}
}

// IsSupported checks if the event is supported
func (e EventName) IsSupported() bool {
	switch e {
	case EventPullRequest,
		EventPush,
		EventRelease,
		EventSchedule,
		EventWorkflowDispatch:
		return true
	default:
		return false
	}
}

func (e EventName) String() string {
	return string(e)
}

// UnsupportedEventError is returned for a workflow trigger this tool cannot describe
type UnsupportedEventError struct {
	Name string
}

func (e *UnsupportedEventError) Error() string {
	supported := make([]string, 0, len(SupportedEventNames()))
	for _, name := range SupportedEventNames() {
		supported = append(supported, name.String())
	}
	return fmt.Sprintf("Unsupported %q event (currently supported events include: %s)", e.Name, strings.Join(supported, ", "))
}

// ParseEventName parses GITHUB_EVENT_NAME
func ParseEventName(s string) (EventName, error) {
	name := EventName(s)
	if !name.IsSupported() {
		return "", &UnsupportedEventError{Name: s}
	}
	return name, nil
}
