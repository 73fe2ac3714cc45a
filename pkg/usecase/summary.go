package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/interval"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/mrkdwn"
)

func summaryVerb(status types.JobStatus) string {
	switch status {
	case types.JobStatusSuccess:
		return "Deployed"
	case types.JobStatusFailure:
		return "Failed deploying"
	case types.JobStatusCancelled:
		return "Cancelled deploying"
	default:
		return "Deploying"
	}
}

// SummaryText renders the summary sentence followed by the event headline,
// e.g. "<@U2> is deploying *repo*: <url|title>". An empty status means the
// deployment has just started.
func SummaryText(repo string, status types.JobStatus, author *model.MessageAuthor, headline *model.Link) model.Text {
	verb := summaryVerb(status)

	var plainSubject, mrkdwnSubject string
	if author.IsSlackMatched() {
		plainSubject = author.Username
		mrkdwnSubject = mrkdwn.Mention(string(author.SlackUserID))
		if status == "" {
			verb = " is " + strings.ToLower(verb)
		} else {
			verb = " " + strings.ToLower(verb)
		}
	}

	return model.Text{
		Plain: plainSubject + verb + " " + repo + ": " + headline.Text,
		Mrkdwn: strings.Join([]string{
			statusEmoji(status),
			mrkdwnSubject + verb + " " + mrkdwn.Bold(repo) + ":",
			mrkdwn.Link(headline.URL, mrkdwn.Escape(headline.Text)),
		}, " "),
	}
}

// BuildSummaryMessage builds the thread root message. duration is the time
// since the summary was first posted and is nil for the initial post.
func (uc *UseCases) BuildSummaryMessage(ctx context.Context, run *model.WorkflowRun, ev model.Event, author *model.MessageAuthor, status types.JobStatus, duration *interval.Duration) (*model.Message, error) {
	headline, err := ev.Headline(ctx, run, uc.github)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build event headline", goerr.V("event", ev.Name()))
	}

	text := SummaryText(run.Repo, status, author, headline)
	return ComposeMessage(text, BuildContextBlock(run, ev, duration), author), nil
}
