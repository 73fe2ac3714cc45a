package model

import "encoding/json"

// MergeQueueBotLogin is the sender login of pushes made by the GitHub merge queue
const MergeQueueBotLogin = "github-merge-queue[bot]"

// GitHubSender is the actor that triggered the webhook event
type GitHubSender struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// IsMergeQueue reports whether the sender is the merge queue bot
func (s *GitHubSender) IsMergeQueue() bool {
	return s.Login == MergeQueueBotLogin
}

// SenderFromPayload extracts the sender of a raw webhook payload. It returns
// nil unless both login and avatar URL are present; absence is not an error.
func SenderFromPayload(payload []byte) *GitHubSender {
	var p struct {
		Sender *GitHubSender `json:"sender"`
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil
	}
	if p.Sender == nil || p.Sender.Login == "" || p.Sender.AvatarURL == "" {
		return nil
	}
	return p.Sender
}

// GitHubUser is a GitHub user profile
type GitHubUser struct {
	Login     string
	Name      string // display name, empty when the user has not set one
	AvatarURL string
}

// Sender returns the user as a sender identity
func (u *GitHubUser) Sender() *GitHubSender {
	return &GitHubSender{Login: u.Login, AvatarURL: u.AvatarURL}
}
