package slack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
	"github.com/slack-go/slack"
)

// DefaultMaxRetries is the default number of retries of a rate limited call
const DefaultMaxRetries = 3

// client implements Service interface
type client struct {
	api        *slack.Client
	maxRetries uint64
	apiOptions []slack.Option
}

// Option is a functional option for client configuration
type Option func(*client)

// WithMaxRetries sets how many times a rate limited call is retried
func WithMaxRetries(n uint64) Option {
	return func(c *client) {
		c.maxRetries = n
	}
}

// WithAPIURL points the client at another Slack API endpoint. url must end with "/".
func WithAPIURL(url string) Option {
	return func(c *client) {
		c.apiOptions = append(c.apiOptions, slack.OptionAPIURL(url))
	}
}

// New creates a new Slack service with the provided bot token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	c := &client{
		maxRetries: DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(c)
	}
	c.api = slack.New(token, c.apiOptions...)

	return c, nil
}

// rateLimitBackOff waits as long as the last rate limited response asked for
type rateLimitBackOff struct {
	wait time.Duration
}

func (b *rateLimitBackOff) NextBackOff() time.Duration { return b.wait }
func (b *rateLimitBackOff) Reset()                     {}

// withRetry retries op while Slack answers with a rate limit error
func (c *client) withRetry(ctx context.Context, op func() error) error {
	bo := &rateLimitBackOff{}

	return backoff.RetryNotify(func() error {
		err := op()
		var rateLimited *slack.RateLimitedError
		if errors.As(err, &rateLimited) {
			bo.wait = rateLimited.RetryAfter
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx), func(_ error, wait time.Duration) {
		logging.From(ctx).Warn(fmt.Sprintf("Slack API call failed due to rate limiting. Retrying in %d seconds.", int(wait.Seconds())))
	})
}

// isSlackError reports whether err is the Slack API error code
func isSlackError(err error, code string) bool {
	var resp slack.SlackErrorResponse
	if errors.As(err, &resp) {
		return resp.Err == code
	}
	return err != nil && err.Error() == code
}

// ListHumanMembers retrieves every workspace member except Slackbot and app bots
func (c *client) ListHumanMembers(ctx context.Context) ([]*model.SlackMember, error) {
	var users []slack.User
	err := c.withRetry(ctx, func() error {
		var err error
		users, err = c.api.GetUsersContext(ctx)
		return err
	})
	if err != nil {
		if isSlackError(err, "missing_scope") {
			return nil, goerr.Wrap(ErrMissingScope, "failed to list users", goerr.V("scope", "users:read"), goerr.V("cause", err.Error()))
		}
		return nil, goerr.Wrap(err, "failed to list users")
	}

	result := make([]*model.SlackMember, 0, len(users))
	for _, u := range users {
		member := &model.SlackMember{
			ID:          model.SlackUserID(u.ID),
			IsBot:       u.IsBot,
			RealName:    u.Profile.RealName,
			DisplayName: u.Profile.DisplayName,
			Image48:     u.Profile.Image48,
		}
		if !member.IsHuman() {
			continue
		}
		result = append(result, member)
	}

	return result, nil
}

// PostMessage posts msg to a channel and returns the message timestamp
func (c *client) PostMessage(ctx context.Context, channelID string, msg *model.Message) (string, error) {
	opts := []slack.MsgOption{
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionBlocks(buildBlocks(msg)...),
	}
	if !msg.UnfurlLinks() {
		opts = append(opts, slack.MsgOptionDisableLinkUnfurl())
	}
	if msg.Username != "" {
		opts = append(opts, slack.MsgOptionUsername(msg.Username))
	}
	if msg.IconURL != "" {
		opts = append(opts, slack.MsgOptionIconURL(msg.IconURL))
	}
	if msg.ThreadTS != "" {
		opts = append(opts, slack.MsgOptionTS(msg.ThreadTS))
		if msg.ReplyBroadcast {
			opts = append(opts, slack.MsgOptionBroadcast())
		}
	}

	var ts string
	err := c.withRetry(ctx, func() error {
		var err error
		_, ts, err = c.api.PostMessageContext(ctx, channelID, opts...)
		return err
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to post message",
			goerr.V("channel", channelID), goerr.V("thread_ts", msg.ThreadTS))
	}
	if ts == "" {
		return "", goerr.New("posted message has no timestamp", goerr.V("channel", channelID))
	}

	logging.From(ctx).Debug("posted Slack message", "channel", channelID, "ts", ts, "thread_ts", msg.ThreadTS)
	return ts, nil
}

// UpdateMessage replaces the text and blocks of an existing message
func (c *client) UpdateMessage(ctx context.Context, channelID, timestamp string, msg *model.Message) error {
	opts := []slack.MsgOption{
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionBlocks(buildBlocks(msg)...),
	}

	err := c.withRetry(ctx, func() error {
		_, _, _, err := c.api.UpdateMessageContext(ctx, channelID, timestamp, opts...)
		return err
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update message",
			goerr.V("channel", channelID), goerr.V("ts", timestamp))
	}

	logging.From(ctx).Debug("updated Slack message", "channel", channelID, "ts", timestamp)
	return nil
}

// AddReaction adds an emoji reaction to a message
func (c *client) AddReaction(ctx context.Context, channelID, timestamp, name string) error {
	err := c.withRetry(ctx, func() error {
		return c.api.AddReactionContext(ctx, name, slack.NewRefToMessage(channelID, timestamp))
	})
	switch {
	case err == nil, isSlackError(err, "already_reacted"):
		return nil
	case isSlackError(err, "missing_scope"):
		return goerr.Wrap(ErrMissingScope, "failed to add reaction", goerr.V("scope", "reactions:write"), goerr.V("cause", err.Error()))
	default:
		return goerr.Wrap(err, "failed to add reaction",
			goerr.V("channel", channelID), goerr.V("ts", timestamp), goerr.V("reaction", name))
	}
}

// buildBlocks lays out a message as a mrkdwn section followed by a context
// block with the event icon
func buildBlocks(msg *model.Message) []slack.Block {
	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, msg.Section, false, false),
		nil, nil,
	)

	var elements []slack.MixedElement
	if msg.Context.ImageURL != "" {
		elements = append(elements, slack.NewImageBlockElement(msg.Context.ImageURL, msg.Context.ImageAlt))
	}
	elements = append(elements, slack.NewTextBlockObject(slack.MarkdownType, msg.Context.Mrkdwn, false, false))

	return []slack.Block{section, slack.NewContextBlock("", elements...)}
}
