package usecase

import (
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/mrkdwn"
)

// ComposeMessage assembles a Slack message and stamps it with the author
func ComposeMessage(text model.Text, block model.ContextBlock, author *model.MessageAuthor) *model.Message {
	msg := &model.Message{
		Text:    text.Plain,
		Section: text.Mrkdwn,
		Context: block,
	}

	if author != nil && author.Username != "" {
		msg.Username = author.Username + " (via GitHub)"
		msg.IconURL = author.IconURL
	}

	return msg
}

// statusEmoji returns the leading emoji of a message. An empty status means
// the deployment is in progress.
func statusEmoji(status types.JobStatus) string {
	switch status {
	case types.JobStatusSuccess:
		return mrkdwn.Emoji("white_check_mark")
	case types.JobStatusFailure:
		return mrkdwn.Emoji("x")
	case types.JobStatusCancelled:
		return mrkdwn.Emoji("no_entry_sign")
	default:
		return mrkdwn.Emoji("black_square_button")
	}
}
