package github

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// DefaultAPIURL is the public GitHub REST endpoint
const DefaultAPIURL = "https://api.github.com"

const jobsPerPage = 100

type client struct {
	api    *github.Client
	apiURL string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithAPIURL sets the REST endpoint, e.g. the GITHUB_API_URL of a GitHub
// Enterprise Server runner
func WithAPIURL(apiURL string) Option {
	return func(c *client) {
		c.apiURL = strings.TrimSuffix(apiURL, "/")
	}
}

// NewWithToken creates a GitHub Service authenticated by a token such as the
// workflow GITHUB_TOKEN
func NewWithToken(ctx context.Context, token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is required")
	}

	c := newClient(opts)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	return c.init(httpClient)
}

// NewWithApp creates a GitHub Service using GitHub App authentication.
// privateKey can be a PEM string or a file path to a PEM file.
func NewWithApp(appID, installationID int64, privateKey string, opts ...Option) (Service, error) {
	var key []byte

	// #nosec G304 -- path comes from CLI flag, not user input
	if data, err := os.ReadFile(privateKey); err == nil {
		key = data
	} else {
		key = []byte(privateKey)
	}

	c := newClient(opts)

	tr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID), goerr.V("installation_id", installationID))
	}
	tr.BaseURL = c.apiURL

	return c.init(&http.Client{Transport: tr})
}

func newClient(opts []Option) *client {
	c := &client{apiURL: DefaultAPIURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) init(httpClient *http.Client) (Service, error) {
	api := github.NewClient(httpClient)
	if c.apiURL != DefaultAPIURL {
		var err error
		api, err = api.WithEnterpriseURLs(c.apiURL, c.apiURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", c.apiURL))
		}
	}
	c.api = api
	return c, nil
}

func logRate(ctx context.Context, resp *github.Response, op string) {
	if resp == nil {
		return
	}
	logging.From(ctx).Debug("GitHub API call",
		"op", op,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)
}

// GetUser retrieves a user profile by login
func (c *client) GetUser(ctx context.Context, login string) (*model.GitHubUser, error) {
	user, resp, err := c.api.Users.Get(ctx, login)
	logRate(ctx, resp, "users.get")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get GitHub user", goerr.V("login", login))
	}

	return &model.GitHubUser{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// GetPullRequest retrieves a pull request by number
func (c *client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	pr, resp, err := c.api.PullRequests.Get(ctx, owner, repo, number)
	logRate(ctx, resp, "pulls.get")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
	}

	result := &PullRequest{Number: pr.GetNumber()}
	if by := pr.GetMergedBy(); by != nil {
		result.MergedBy = &model.GitHubSender{
			Login:     by.GetLogin(),
			AvatarURL: by.GetAvatarURL(),
		}
	}
	return result, nil
}

// ListWorkflowJobs retrieves every job of the latest attempt of a workflow run
func (c *client) ListWorkflowJobs(ctx context.Context, owner, repo string, runID int64) ([]*WorkflowJob, error) {
	opts := &github.ListWorkflowJobsOptions{
		Filter:      "latest",
		ListOptions: github.ListOptions{PerPage: jobsPerPage},
	}

	var jobs []*WorkflowJob
	for {
		page, resp, err := c.api.Actions.ListWorkflowJobs(ctx, owner, repo, runID, opts)
		logRate(ctx, resp, "actions.list_workflow_jobs")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list workflow jobs",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("run_id", runID))
		}

		for _, j := range page.Jobs {
			jobs = append(jobs, convertJob(j))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return jobs, nil
}

// GetCommit retrieves a commit by SHA
func (c *client) GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error) {
	commit, resp, err := c.api.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	logRate(ctx, resp, "repos.get_commit")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("sha", sha))
	}

	return &model.Commit{
		Message: commit.GetCommit().GetMessage(),
		URL:     commit.GetHTMLURL(),
	}, nil
}

func convertJob(j *github.WorkflowJob) *WorkflowJob {
	job := &WorkflowJob{
		Name:      j.GetName(),
		StartedAt: timestamp(j.StartedAt),
	}
	for _, s := range j.Steps {
		job.Steps = append(job.Steps, &JobStep{
			Name:        s.GetName(),
			Conclusion:  s.GetConclusion(),
			CompletedAt: timestamp(s.CompletedAt),
		})
	}
	return job
}

func timestamp(ts *github.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
