package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/errutil"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
)

var mergeQueuePRNumberPattern = regexp.MustCompile(`\(#(\d+)\)$`)

// parseMergeQueuePRNumber extracts the pull request number a merge queue
// appends to the commit title, e.g. "Add feature (#123)". Only the first
// line is considered so trailers referencing other pull requests never match.
func parseMergeQueuePRNumber(message string) (int, bool) {
	title, _, _ := strings.Cut(message, "\n")
	m := mergeQueuePRNumberPattern.FindStringSubmatch(strings.TrimRight(title, " \t\r"))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ResolveGitHubActor returns the GitHub identity to attribute the run to.
// Pushes by the merge queue bot are attributed to the user who merged the
// pull request; when that user cannot be determined the bot itself is used.
func (uc *UseCases) ResolveGitHubActor(ctx context.Context, run *model.WorkflowRun, sender *model.GitHubSender) *model.GitHubSender {
	if !sender.IsMergeQueue() {
		return sender
	}

	merger, err := uc.resolveMergeQueueMerger(ctx, run)
	if err != nil {
		errutil.Warn(ctx, err, "Unable to determine who merged the pull request, using merge queue identity")
		return sender
	}

	logging.From(ctx).Debug("resolved merge queue merger", "login", merger.Login)
	return merger
}

func (uc *UseCases) resolveMergeQueueMerger(ctx context.Context, run *model.WorkflowRun) (*model.GitHubSender, error) {
	ev, err := run.Event()
	if err != nil {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "failed to decode event", goerr.V("cause", err.Error()))
	}

	push, ok := ev.(*model.PushEvent)
	if !ok {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "merge queue event is not a push", goerr.V("event", ev.Name()))
	}

	commit := push.HeadCommitInfo()
	if commit == nil {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "push event has no head commit")
	}

	number, ok := parseMergeQueuePRNumber(commit.Message)
	if !ok {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "head commit message does not reference a pull request",
			goerr.V("message", commit.Message))
	}

	if run.Owner == "" || run.Repo == "" {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "repository is unknown", goerr.V("number", number))
	}

	pr, err := uc.github.GetPullRequest(ctx, run.Owner, run.Repo, number)
	if err != nil {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "failed to get pull request",
			goerr.V("number", number), goerr.V("cause", err.Error()))
	}

	if pr.MergedBy == nil || pr.MergedBy.Login == "" {
		return nil, goerr.Wrap(ErrMergeQueueResolution, "pull request has no merger", goerr.V("number", number))
	}

	return pr.MergedBy, nil
}
