package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/service/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds configuration for the GitHub REST client. A token and GitHub
// App credentials are alternatives.
type GitHub struct {
	token          string
	appID          int
	installationID int
	privateKey     string
	apiURL         string
}

// Flags returns CLI flags for GitHub configuration
func (g *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token with actions:read and pull-requests:read",
			Category:    "GitHub",
			Sources:     cli.EnvVars("INPUT_GITHUB_TOKEN", "SLACK_DEPLOY_GITHUB_TOKEN"),
			Destination: &g.token,
		},
		&cli.IntFlag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Sources:     cli.EnvVars("SLACK_DEPLOY_GITHUB_APP_ID"),
			Destination: &g.appID,
		},
		&cli.IntFlag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App Installation ID",
			Category:    "GitHub",
			Sources:     cli.EnvVars("SLACK_DEPLOY_GITHUB_APP_INSTALLATION_ID"),
			Destination: &g.installationID,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM string or file path)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("SLACK_DEPLOY_GITHUB_APP_PRIVATE_KEY"),
			Destination: &g.privateKey,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Value:       github.DefaultAPIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
			Destination: &g.apiURL,
		},
	}
}

// LogAttrs returns log attributes for the GitHub configuration (secrets hidden)
func (g *GitHub) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("token.len", len(g.token)),
		slog.Int("app_id", g.appID),
		slog.Int("installation_id", g.installationID),
		slog.String("api_url", g.apiURL),
	}
}

// IsAppConfigured returns true if all GitHub App flags are set
func (g *GitHub) IsAppConfigured() bool {
	return g.appID != 0 && g.installationID != 0 && g.privateKey != ""
}

// Validate checks that exactly one authentication method is configured
func (g *GitHub) Validate() error {
	if g.token != "" && g.IsAppConfigured() {
		return goerr.Wrap(ErrConflictingGitHub, "invalid GitHub configuration")
	}
	if g.token == "" && !g.IsAppConfigured() {
		return missing("INPUT_GITHUB_TOKEN")
	}
	return nil
}

// Configure creates the GitHub Service from the configured flags
func (g *GitHub) Configure(ctx context.Context) (github.Service, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	opts := []github.Option{github.WithAPIURL(g.apiURL)}

	var (
		svc github.Service
		err error
	)
	if g.token != "" {
		svc, err = github.NewWithToken(ctx, g.token, opts...)
	} else {
		svc, err = github.NewWithApp(int64(g.appID), int64(g.installationID), g.privateKey, opts...)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub service")
	}

	return svc, nil
}
