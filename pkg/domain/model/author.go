package model

// MessageAuthor is the identity stamped on every Slack message.
//
// A Slack-matched author has SlackUserID set and takes its name and icon from
// the Slack profile. A GitHub fallback author has no SlackUserID and takes its
// name and icon from the GitHub actor. Use the constructors; never build one
// partially.
type MessageAuthor struct {
	SlackUserID SlackUserID
	Username    string
	IconURL     string
}

// NewSlackAuthor creates an author from a matched Slack member
func NewSlackAuthor(member *SlackMember) *MessageAuthor {
	return &MessageAuthor{
		SlackUserID: member.ID,
		Username:    member.DisplayName,
		IconURL:     member.Image48,
	}
}

// NewGitHubAuthor creates a fallback author from a GitHub actor
func NewGitHubAuthor(sender *GitHubSender) *MessageAuthor {
	return &MessageAuthor{
		Username: sender.Login,
		IconURL:  sender.AvatarURL,
	}
}

// IsSlackMatched reports whether the author is linked to a Slack member
func (a *MessageAuthor) IsSlackMatched() bool {
	return a != nil && a.SlackUserID != ""
}
