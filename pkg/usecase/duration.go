package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	githubsvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/github"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/interval"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
)

// slackStepPattern matches "slack" as a word. Step names are padded with a
// space on both sides before matching.
var slackStepPattern = regexp.MustCompile(`(?i)[^A-Za-z]slack[^A-Za-z]`)

// StageDuration returns the time elapsed in the current job since the last
// completed Slack notification step, or since the job started when there is
// none. It returns nil when neither is known.
func (uc *UseCases) StageDuration(ctx context.Context, run *model.WorkflowRun, now time.Time) (*interval.Duration, error) {
	jobs, err := uc.github.ListWorkflowJobs(ctx, run.Owner, run.Repo, run.RunID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow jobs")
	}

	start := stageStart(jobs, run.Job)
	if start == nil {
		logging.From(ctx).Debug("no stage start time", "job", run.Job, "jobs", len(jobs))
		return nil, nil
	}

	d := interval.Between(*start, now)
	return &d, nil
}

func stageStart(jobs []*githubsvc.WorkflowJob, jobName string) *time.Time {
	var job *githubsvc.WorkflowJob
	for _, j := range jobs {
		if j.Name == jobName {
			job = j
			break
		}
	}
	if job == nil {
		return nil
	}

	var lastSlackStep *time.Time
	for _, s := range job.Steps {
		if s.IsCompleted() && slackStepPattern.MatchString(" "+s.Name+" ") {
			lastSlackStep = s.CompletedAt
		}
	}
	if lastSlackStep != nil {
		return lastSlackStep
	}

	return job.StartedAt
}

// SummaryDuration returns the time elapsed since the summary message was posted
func SummaryDuration(threadTS string, now time.Time) (interval.Duration, error) {
	posted, err := model.TimeFromSlackTS(threadTS)
	if err != nil {
		return interval.Duration{}, err
	}
	return interval.Between(posted, now), nil
}
