package usecase

import (
	"time"

	githubsvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/github"
	slacksvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/slack"
)

// UseCases posts and updates deployment notifications for one workflow run
type UseCases struct {
	github        githubsvc.Service
	slack         slacksvc.Service
	channel       string
	errorReaction string
	now           func() time.Time
}

type Option func(*UseCases)

// WithErrorReaction sets the emoji added to the summary message when a stage fails
func WithErrorReaction(name string) Option {
	return func(uc *UseCases) {
		uc.errorReaction = name
	}
}

// WithClock replaces the current time source
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(github githubsvc.Service, slack slacksvc.Service, channel string, opts ...Option) *UseCases {
	uc := &UseCases{
		github:  github,
		slack:   slack,
		channel: channel,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
