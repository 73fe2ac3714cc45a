package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slacksvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	botToken      string
	channel       string
	errorReaction string
	apiURL        string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (chat:write, users:read, reactions:write)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("SLACK_DEPLOY_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post deployment notifications to",
			Category:    "Slack",
			Destination: &x.channel,
			Sources:     cli.EnvVars("SLACK_DEPLOY_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "slack-error-reaction",
			Usage:       "Emoji name added to the summary message when a stage fails",
			Category:    "Slack",
			Destination: &x.errorReaction,
			Sources:     cli.EnvVars("SLACK_DEPLOY_ERROR_REACTION"),
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API base URL",
			Category:    "Slack",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("SLACK_DEPLOY_API_URL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channel),
		slog.String("error-reaction", x.errorReaction),
	)
}

// Channel returns the notification channel ID
func (x *Slack) Channel() string {
	return x.channel
}

// ErrorReaction returns the emoji name without surrounding colons, empty when disabled
func (x *Slack) ErrorReaction() string {
	name := x.errorReaction
	if len(name) >= 2 && name[0] == ':' && name[len(name)-1] == ':' {
		name = name[1 : len(name)-1]
	}
	return name
}

// Validate checks required Slack settings
func (x *Slack) Validate() error {
	if x.botToken == "" {
		return missing("SLACK_DEPLOY_BOT_TOKEN")
	}
	if x.channel == "" {
		return missing("SLACK_DEPLOY_CHANNEL")
	}
	return nil
}

// Configure creates the Slack Service
func (x *Slack) Configure() (slacksvc.Service, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var opts []slacksvc.Option
	if x.apiURL != "" {
		opts = append(opts, slacksvc.WithAPIURL(x.apiURL))
	}

	svc, err := slacksvc.New(x.botToken, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack service")
	}
	return svc, nil
}
