package slack

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
)

// ErrMissingScope is returned when the bot token lacks the OAuth scope a call
// needs. The scope name is attached as the "scope" value.
var ErrMissingScope = goerr.New("Slack token is missing a required scope")

// Service provides interface to Slack API for deployment notifications
type Service interface {
	// ListHumanMembers retrieves every workspace member except Slackbot and app bots
	ListHumanMembers(ctx context.Context) ([]*model.SlackMember, error)

	// PostMessage posts msg to a channel and returns the message timestamp.
	// The message is posted as a thread reply when msg.ThreadTS is set.
	PostMessage(ctx context.Context, channelID string, msg *model.Message) (string, error)

	// UpdateMessage replaces the content of an existing message
	UpdateMessage(ctx context.Context, channelID, timestamp string, msg *model.Message) error

	// AddReaction adds an emoji reaction to a message. Adding a reaction that
	// is already present succeeds.
	AddReaction(ctx context.Context, channelID, timestamp, name string) error
}

// MissingScope reports whether err is ErrMissingScope and returns the scope name
func MissingScope(err error) (string, bool) {
	if !errors.Is(err, ErrMissingScope) {
		return "", false
	}
	var ge *goerr.Error
	if errors.As(err, &ge) {
		if scope, ok := ge.Values()["scope"].(string); ok {
			return scope, true
		}
	}
	return "", true
}
