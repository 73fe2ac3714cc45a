package cli

import (
	"context"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/cli/config"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/usecase"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli/v3"
)

// outputTS is the step output carrying the summary message timestamp
const outputTS = "ts"

type postCommand struct {
	slack  config.Slack
	github config.GitHub
	step   config.Step
}

func (x *postCommand) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, x.slack.Flags()...)
	flags = append(flags, x.github.Flags()...)
	flags = append(flags, x.step.Flags()...)
	return flags
}

// Run posts the summary message, or a stage reply when a thread is given
func (x *postCommand) Run(ctx context.Context, action *githubactions.Action) error {
	run, err := workflowRun(action)
	if err != nil {
		return err
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("repository", run.Owner+"/"+run.Repo)
		scope.SetTag("event", run.EventName)
		scope.SetTag("job", run.Job)
	})

	ctx = logging.With(ctx, logging.From(ctx).With(
		"repository", run.Owner+"/"+run.Repo,
		"run_id", run.RunID,
	))

	slackSvc, err := x.slack.Configure()
	if err != nil {
		return err
	}

	githubSvc, err := x.github.Configure(ctx)
	if err != nil {
		return err
	}

	input, err := x.step.Input()
	if err != nil {
		return err
	}

	uc := usecase.New(githubSvc, slackSvc, x.slack.Channel(),
		usecase.WithErrorReaction(x.slack.ErrorReaction()),
	)

	ts, err := uc.Notify(ctx, run, input)
	if err != nil {
		return err
	}

	if ts != "" {
		action.SetOutput(outputTS, ts)
	}
	return nil
}

// workflowRun reads the workflow identity and event payload from the runner
// environment
func workflowRun(action *githubactions.Action) (*model.WorkflowRun, error) {
	gh, err := action.Context()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub Actions context")
	}

	owner, repo := gh.Repo()
	if owner == "" || repo == "" {
		return nil, goerr.New("GITHUB_REPOSITORY environment variable required")
	}

	var payload []byte
	if gh.EventPath != "" {
		// #nosec G304 -- path is set by the Actions runner
		payload, err = os.ReadFile(gh.EventPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read event payload", goerr.V("path", gh.EventPath))
		}
	}

	return &model.WorkflowRun{
		Owner:     owner,
		Repo:      repo,
		RunID:     gh.RunID,
		Job:       gh.Job,
		SHA:       gh.SHA,
		Workflow:  gh.Workflow,
		EventName: gh.EventName,
		ServerURL: gh.ServerURL,
		Payload:   payload,
	}, nil
}
