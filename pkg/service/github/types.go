package github

import (
	"context"
	"time"

	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
)

// Service provides interface to GitHub REST API for deployment metadata
type Service interface {
	// GetUser retrieves a user profile by login
	GetUser(ctx context.Context, login string) (*model.GitHubUser, error)

	// GetPullRequest retrieves a pull request by number
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)

	// ListWorkflowJobs retrieves every job of a workflow run attempt, following pagination
	ListWorkflowJobs(ctx context.Context, owner, repo string, runID int64) ([]*WorkflowJob, error)

	// GetCommit retrieves a commit by SHA
	GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error)
}

// PullRequest is the part of a pull request needed to attribute a merge
type PullRequest struct {
	Number   int
	MergedBy *model.GitHubSender
}

// WorkflowJob is a job of a workflow run
type WorkflowJob struct {
	Name      string
	StartedAt *time.Time
	Steps     []*JobStep
}

// JobStep is a step of a workflow job
type JobStep struct {
	Name        string
	Conclusion  string
	CompletedAt *time.Time
}

// IsCompleted reports whether the step ran to completion. Skipped steps
// carry a completion time but never ran.
func (s *JobStep) IsCompleted() bool {
	return s.CompletedAt != nil && s.Conclusion != "skipped"
}
