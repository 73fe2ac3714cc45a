package model

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
)

// Commit is the part of a commit shown in a summary message
type Commit struct {
	Message string
	URL     string
}

// CommitGetter fetches a commit by SHA
type CommitGetter interface {
	GetCommit(ctx context.Context, owner, repo, sha string) (*Commit, error)
}

// Event is a decoded webhook payload of a supported trigger. Every supported
// trigger implements all methods, so a new trigger cannot be added without
// deciding its links and labels.
type Event interface {
	Name() types.EventName

	// WorkflowURL is the link target of the workflow name in the context block
	WorkflowURL(run *WorkflowRun) string

	// RefLabel is the branch name or short commit SHA in the context block
	RefLabel(run *WorkflowRun) string

	// Headline links what is being deployed in the summary message
	Headline(ctx context.Context, run *WorkflowRun, commits CommitGetter) (*Link, error)

	isEvent()
}

// DecodeEvent decodes payload as the event named name
func DecodeEvent(name types.EventName, payload []byte) (Event, error) {
	var ev Event
	switch name {
	case types.EventPullRequest:
		ev = &PullRequestEvent{}
	case types.EventPush:
		ev = &PushEvent{}
	case types.EventRelease:
		ev = &ReleaseEvent{}
	case types.EventSchedule:
		ev = &ScheduleEvent{}
	case types.EventWorkflowDispatch:
		ev = &WorkflowDispatchEvent{}
	default:
		return nil, &types.UnsupportedEventError{Name: name.String()}
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, ev); err != nil {
			return nil, goerr.Wrap(err, "failed to decode event payload", goerr.V("event", name))
		}
	}
	return ev, nil
}

// firstLine omits the commit description
func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return line
}

// PullRequestEvent is a pull_request trigger
type PullRequestEvent struct {
	github.PullRequestEvent
}

func (e *PullRequestEvent) Name() types.EventName { return types.EventPullRequest }

func (e *PullRequestEvent) WorkflowURL(_ *WorkflowRun) string {
	return e.GetPullRequest().GetHTMLURL() + "/checks"
}

func (e *PullRequestEvent) RefLabel(_ *WorkflowRun) string {
	return e.GetPullRequest().GetHead().GetRef()
}

func (e *PullRequestEvent) Headline(_ context.Context, _ *WorkflowRun, _ CommitGetter) (*Link, error) {
	pr := e.GetPullRequest()
	if pr == nil {
		return nil, goerr.New("unexpected pull_request event payload (undefined pull_request)")
	}
	return &Link{
		Text: firstLine(pr.GetTitle() + " (#" + strconv.Itoa(pr.GetNumber()) + ")"),
		URL:  pr.GetHTMLURL(),
	}, nil
}

func (e *PullRequestEvent) isEvent() {}

// PushEvent is a push trigger
type PushEvent struct {
	github.PushEvent
}

func (e *PushEvent) Name() types.EventName { return types.EventPush }

func (e *PushEvent) WorkflowURL(run *WorkflowRun) string {
	return run.CommitURL() + "/checks"
}

func (e *PushEvent) RefLabel(run *WorkflowRun) string {
	return run.ShortSHA()
}

func (e *PushEvent) Headline(_ context.Context, _ *WorkflowRun, _ CommitGetter) (*Link, error) {
	commit := e.HeadCommitInfo()
	if commit == nil {
		return nil, goerr.New("unexpected push event payload (undefined head_commit)")
	}
	return &Link{
		Text: firstLine(commit.Message),
		URL:  commit.URL,
	}, nil
}

// HeadCommitInfo returns the pushed head commit, nil when the payload has none
func (e *PushEvent) HeadCommitInfo() *Commit {
	if e.HeadCommit == nil {
		return nil
	}
	return &Commit{
		Message: e.HeadCommit.GetMessage(),
		URL:     e.HeadCommit.GetURL(),
	}
}

func (e *PushEvent) isEvent() {}

// ReleaseEvent is a release trigger. Releases have no per-release checks
// page, so the workflow links to the Actions tab.
type ReleaseEvent struct {
	github.ReleaseEvent
}

func (e *ReleaseEvent) Name() types.EventName { return types.EventRelease }

func (e *ReleaseEvent) WorkflowURL(run *WorkflowRun) string {
	return run.ActionsURL()
}

func (e *ReleaseEvent) RefLabel(run *WorkflowRun) string {
	return run.ShortSHA()
}

func (e *ReleaseEvent) Headline(_ context.Context, _ *WorkflowRun, _ CommitGetter) (*Link, error) {
	release := e.GetRelease()
	if release == nil {
		return nil, goerr.New("unexpected release event payload (undefined release)")
	}
	name := release.GetName()
	if name == "" {
		name = release.GetTagName()
	}
	return &Link{
		Text: name,
		URL:  release.GetHTMLURL(),
	}, nil
}

func (e *ReleaseEvent) isEvent() {}

// ScheduleEvent is a schedule (cron) trigger
type ScheduleEvent struct {
	Schedule string `json:"schedule"`
}

func (e *ScheduleEvent) Name() types.EventName { return types.EventSchedule }

func (e *ScheduleEvent) WorkflowURL(run *WorkflowRun) string {
	return run.CommitURL() + "/checks"
}

func (e *ScheduleEvent) RefLabel(run *WorkflowRun) string {
	return run.ShortSHA()
}

func (e *ScheduleEvent) Headline(ctx context.Context, run *WorkflowRun, commits CommitGetter) (*Link, error) {
	return commitHeadline(ctx, run, commits)
}

func (e *ScheduleEvent) isEvent() {}

// WorkflowDispatchEvent is a manual workflow_dispatch trigger
type WorkflowDispatchEvent struct {
	github.WorkflowDispatchEvent
}

func (e *WorkflowDispatchEvent) Name() types.EventName { return types.EventWorkflowDispatch }

func (e *WorkflowDispatchEvent) WorkflowURL(run *WorkflowRun) string {
	return run.CommitURL() + "/checks"
}

func (e *WorkflowDispatchEvent) RefLabel(run *WorkflowRun) string {
	return run.ShortSHA()
}

func (e *WorkflowDispatchEvent) Headline(ctx context.Context, run *WorkflowRun, commits CommitGetter) (*Link, error) {
	return commitHeadline(ctx, run, commits)
}

func (e *WorkflowDispatchEvent) isEvent() {}

// commitHeadline describes triggers without a commit in the payload by
// fetching the workflow commit
func commitHeadline(ctx context.Context, run *WorkflowRun, commits CommitGetter) (*Link, error) {
	commit, err := commits.GetCommit(ctx, run.Owner, run.Repo, run.SHA)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workflow commit", goerr.V("sha", run.SHA))
	}
	return &Link{
		Text: firstLine(commit.Message),
		URL:  commit.URL,
	}, nil
}
