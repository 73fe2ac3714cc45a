package model

// SlackUserID represents a unique identifier for a Slack user
type SlackUserID string

// SlackbotUserID is the special user ID of @Slackbot
const SlackbotUserID SlackUserID = "USLACKBOT"

// SlackMember represents a Slack workspace member with the profile fields used for author matching
type SlackMember struct {
	ID          SlackUserID
	IsBot       bool
	RealName    string // profile.real_name, empty when unset
	DisplayName string // profile.display_name, empty when unset
	Image48     string // profile.image_48, empty when unset
}

// IsHuman reports whether the member is a real person (not Slackbot or an app bot)
func (m *SlackMember) IsHuman() bool {
	return m.ID != SlackbotUserID && !m.IsBot
}

// IsMatchable reports whether the profile is complete enough to stamp a message.
// Partial profiles are never used, even when the real name matches.
func (m *SlackMember) IsMatchable() bool {
	return m.RealName != "" && m.DisplayName != "" && m.Image48 != ""
}
