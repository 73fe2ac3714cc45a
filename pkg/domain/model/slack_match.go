package model

import "fmt"

// SlackMatchResult classifies the outcome of matching a GitHub user to the Slack directory
type SlackMatchResult int

const (
	// SlackMatchFound means exactly one complete profile matched
	SlackMatchFound SlackMatchResult = iota + 1
	// SlackMatchNotFound means no complete profile matched, or the GitHub user has no name
	SlackMatchNotFound
	// SlackMatchAmbiguous means several complete profiles matched
	SlackMatchAmbiguous
	// SlackMatchUnavailable means the directory could not be read (missing OAuth scope)
	SlackMatchUnavailable
)

func (r SlackMatchResult) String() string {
	switch r {
	case SlackMatchFound:
		return "found"
	case SlackMatchNotFound:
		return "not_found"
	case SlackMatchAmbiguous:
		return "ambiguous"
	case SlackMatchUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("SlackMatchResult(%d)", int(r))
	}
}

// SlackMatch is the tagged result of a Slack directory lookup. Member is set
// only for SlackMatchFound; Reason explains every other result.
type SlackMatch struct {
	Result SlackMatchResult
	Member *SlackMember
	Reason string
}

// NewSlackMatchFound returns a successful match
func NewSlackMatchFound(member *SlackMember) *SlackMatch {
	return &SlackMatch{Result: SlackMatchFound, Member: member}
}

// NewSlackMatchNotFound returns a match with no candidate
func NewSlackMatchNotFound(name string) *SlackMatch {
	return &SlackMatch{
		Result: SlackMatchNotFound,
		Reason: fmt.Sprintf("Unable to match GitHub user %q to Slack user by name.", name),
	}
}

// NewSlackMatchAmbiguous returns a match with more than one candidate
func NewSlackMatchAmbiguous(name string, count int) *SlackMatch {
	return &SlackMatch{
		Result: SlackMatchAmbiguous,
		Reason: fmt.Sprintf("%d Slack users match GitHub user name %q.", count, name),
	}
}

// NewSlackMatchUnavailable returns a match that could not be attempted
func NewSlackMatchUnavailable(reason string) *SlackMatch {
	return &SlackMatch{Result: SlackMatchUnavailable, Reason: reason}
}

// Author returns the Slack author for a found match, nil otherwise
func (m *SlackMatch) Author() *MessageAuthor {
	if m == nil || m.Result != SlackMatchFound || m.Member == nil {
		return nil
	}
	return NewSlackAuthor(m.Member)
}
