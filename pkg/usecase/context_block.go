package usecase

import (
	"strings"

	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/interval"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/mrkdwn"
)

const contextSeparator = "  ∙  "

// EventImageURL returns the icon shown next to the context line of an event
func EventImageURL(name types.EventName) string {
	switch name {
	case types.EventPullRequest:
		return "https://user-images.githubusercontent.com/847532/193414326-5aaf5449-0c81-4a66-9b19-4e5e6baeee9e.png"
	case types.EventPush:
		return "https://user-images.githubusercontent.com/847532/193413878-d5fcd559-401d-4954-a44c-36de5d6a7adf.png"
	case types.EventSchedule:
		return "https://user-images.githubusercontent.com/847532/193414289-3b185a3b-aee8-40f9-99fe-0615d255c8dd.png"
	case types.EventRelease:
		return "https://user-images.githubusercontent.com/847532/265212273-b8c1036a-26b0-4196-bb11-0cbcb85d57c0.png"
	case types.EventWorkflowDispatch:
		return "https://user-images.githubusercontent.com/847532/197601879-3bc8bf73-87c0-4216-8de7-c55d34993ef1.png"
	default:
		return ""
	}
}

// BuildContextBlock renders the metadata line: workflow link, ref label and,
// when duration is set, the elapsed time
func BuildContextBlock(run *model.WorkflowRun, ev model.Event, duration *interval.Duration) model.ContextBlock {
	parts := []string{
		mrkdwn.Link(ev.WorkflowURL(run), mrkdwn.Escape(run.Workflow)),
		mrkdwn.Escape(ev.RefLabel(run)),
	}
	if duration != nil {
		parts = append(parts, duration.String())
	}

	return model.ContextBlock{
		ImageURL: EventImageURL(ev.Name()),
		ImageAlt: ev.Name().String() + " event",
		Mrkdwn:   strings.Join(parts, contextSeparator),
	}
}
