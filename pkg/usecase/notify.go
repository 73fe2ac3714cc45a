package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
	slacksvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/slack"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/errutil"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
)

// NotifyInput is the step input of one invocation
type NotifyInput struct {
	// ThreadTS is the summary message timestamp returned by the first invocation
	ThreadTS string
	// Status is the job status, required with ThreadTS
	Status string
	// Conclusion forces the summary update after a successful stage
	Conclusion bool
}

// Notify posts the summary message when no thread is given and returns its
// timestamp. With a thread it posts a stage reply, updates the summary when
// the deployment concluded or the stage was unsuccessful, and returns "".
func (uc *UseCases) Notify(ctx context.Context, run *model.WorkflowRun, input NotifyInput) (string, error) {
	if input.ThreadTS == "" {
		return uc.postSummary(ctx, run)
	}
	return "", uc.postStage(ctx, run, input)
}

func (uc *UseCases) postSummary(ctx context.Context, run *model.WorkflowRun) (string, error) {
	logger := logging.From(ctx)

	ev, err := run.Event()
	if err != nil {
		return "", err
	}

	author := uc.ResolveAuthor(ctx, run)

	msg, err := uc.BuildSummaryMessage(ctx, run, ev, author, "", nil)
	if err != nil {
		return "", err
	}

	logger.Info("Posting summary message")
	ts, err := uc.slack.PostMessage(ctx, uc.channel, msg)
	if err != nil {
		return "", goerr.Wrap(err, "failed to post summary message", goerr.V(ChannelKey, uc.channel))
	}

	logger.Info("posted summary message",
		ChannelKey, uc.channel,
		"ts", ts,
		"author", authorName(author),
		"event", ev.Name(),
	)
	return ts, nil
}

func (uc *UseCases) postStage(ctx context.Context, run *model.WorkflowRun, input NotifyInput) error {
	logger := logging.From(ctx)

	if input.Status == "" {
		return goerr.Wrap(ErrStatusRequired, "missing status", goerr.V(ThreadTSKey, input.ThreadTS))
	}
	status, err := types.ParseJobStatus(input.Status)
	if err != nil {
		return err
	}

	ev, err := run.Event()
	if err != nil {
		return err
	}

	author := uc.ResolveAuthor(ctx, run)
	now := uc.now()

	duration, err := uc.StageDuration(ctx, run, now)
	if err != nil {
		return err
	}

	stage := BuildStageMessage(run, ev, status, duration, author, input.ThreadTS)

	logger.Info("Posting stage message in thread", ThreadTSKey, input.ThreadTS)
	if _, err := uc.slack.PostMessage(ctx, uc.channel, stage); err != nil {
		return goerr.Wrap(err, "failed to post stage message",
			goerr.V(ChannelKey, uc.channel), goerr.V(ThreadTSKey, input.ThreadTS))
	}

	if input.Conclusion || !status.IsSuccessful() {
		total, err := SummaryDuration(input.ThreadTS, now)
		if err != nil {
			return err
		}

		summary, err := uc.BuildSummaryMessage(ctx, run, ev, author, status, &total)
		if err != nil {
			return err
		}

		logger.Info("Updating summary message", StatusKey, status)
		if err := uc.slack.UpdateMessage(ctx, uc.channel, input.ThreadTS, summary); err != nil {
			return goerr.Wrap(err, "failed to update summary message",
				goerr.V(ChannelKey, uc.channel), goerr.V(ThreadTSKey, input.ThreadTS))
		}
	}

	if status == types.JobStatusFailure {
		if err := uc.addErrorReaction(ctx, input.ThreadTS); err != nil {
			return err
		}
	}

	logger.Info("posted stage message",
		ChannelKey, uc.channel,
		ThreadTSKey, input.ThreadTS,
		StatusKey, status,
		"author", authorName(author),
	)
	return nil
}

// addErrorReaction marks the summary message of a failed deployment. A token
// without reactions:write only produces a warning.
func (uc *UseCases) addErrorReaction(ctx context.Context, threadTS string) error {
	if uc.errorReaction == "" {
		return nil
	}

	logging.From(ctx).Info("Adding error reaction", "reaction", uc.errorReaction)
	err := uc.slack.AddReaction(ctx, uc.channel, threadTS, uc.errorReaction)
	if scope, ok := slacksvc.MissingScope(err); ok {
		errutil.Warn(ctx, err, "SLACK_DEPLOY_BOT_TOKEN does not include \""+scope+"\" OAuth scope.")
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to add error reaction", goerr.V(ThreadTSKey, threadTS))
	}
	return nil
}

func authorName(author *model.MessageAuthor) string {
	if author == nil {
		return ""
	}
	return author.Username
}
