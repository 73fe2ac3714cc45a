package usecase

import (
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/interval"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/mrkdwn"
)

func stageVerb(status types.JobStatus) string {
	switch status {
	case types.JobStatusFailure:
		return "Failed"
	case types.JobStatusCancelled:
		return "Cancelled"
	default:
		return "Finished"
	}
}

// StageText renders the outcome of a job, e.g. ":x: Failed *deploy*"
func StageText(job string, status types.JobStatus) model.Text {
	verb := stageVerb(status)
	return model.Text{
		Plain:  verb + " " + job,
		Mrkdwn: statusEmoji(status) + " " + verb + " " + mrkdwn.Bold(mrkdwn.Escape(job)),
	}
}

// BuildStageMessage builds a thread reply for the current job. Unsuccessful
// stages are also broadcast to the channel.
func BuildStageMessage(run *model.WorkflowRun, ev model.Event, status types.JobStatus, duration *interval.Duration, author *model.MessageAuthor, threadTS string) *model.Message {
	msg := ComposeMessage(StageText(run.Job, status), BuildContextBlock(run, ev, duration), author)
	msg.ThreadTS = threadTS
	msg.ReplyBroadcast = !status.IsSuccessful()
	return msg
}
