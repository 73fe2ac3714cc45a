package cli

import (
	"context"

	"github.com/secmon-lab/slack-deploy-pipeline/pkg/cli/config"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/errutil"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	return run(ctx, args, version, githubactions.New())
}

func run(ctx context.Context, args []string, version string, action *githubactions.Action) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		post      postCommand
		closers   []func()
	)
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, post.Flags()...)

	app := &cli.Command{
		Name:    "slack-deploy-pipeline",
		Usage:   "Post GitHub Actions deployment progress to a Slack thread",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closeLog, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, closeLog)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Debug("Starting slack-deploy-pipeline",
				"logger", loggerCfg,
				"sentry", sentryCfg,
				"slack", post.slack,
				"step", post.step,
			)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return post.Run(ctx, action)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to post deployment notification")
	}

	return nil
}
