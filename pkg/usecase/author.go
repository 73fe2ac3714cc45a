package usecase

import (
	"context"

	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/errutil"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
)

// ResolveAuthor returns the identity stamped on every message of the run.
// It never fails: a matched Slack member is preferred, then the GitHub
// actor, and nil is returned only when the payload has no sender.
func (uc *UseCases) ResolveAuthor(ctx context.Context, run *model.WorkflowRun) *model.MessageAuthor {
	logger := logging.From(ctx)

	sender := run.Sender()
	if sender == nil {
		logger.Warn("Unable to determine the GitHub sender of the event, posting without an author")
		return nil
	}

	actor := uc.ResolveGitHubActor(ctx, run, sender)
	fallback := model.NewGitHubAuthor(actor)

	user, err := uc.github.GetUser(ctx, actor.Login)
	if err != nil {
		errutil.Warn(ctx, err, "Unable to fetch GitHub user, falling back to GitHub identity")
		return fallback
	}

	match, err := uc.MatchSlackMember(ctx, user)
	if err != nil {
		errutil.Warn(ctx, err, "Unable to match Slack user, falling back to GitHub identity")
		return fallback
	}

	if author := match.Author(); author != nil {
		logger.Debug("matched Slack user", "login", user.Login, "slack_user_id", author.SlackUserID)
		return author
	}

	logger.Warn(match.Reason, "result", match.Result.String(), "login", user.Login)
	return fallback
}
