package usecase_test

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	githubsvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/github"
	slacksvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/slack"
)

type mockGitHubService struct {
	getUserFn          func(ctx context.Context, login string) (*model.GitHubUser, error)
	getPullRequestFn   func(ctx context.Context, owner, repo string, number int) (*githubsvc.PullRequest, error)
	listWorkflowJobsFn func(ctx context.Context, owner, repo string, runID int64) ([]*githubsvc.WorkflowJob, error)
	getCommitFn        func(ctx context.Context, owner, repo, sha string) (*model.Commit, error)

	getUserLogins []string
}

func (m *mockGitHubService) GetUser(ctx context.Context, login string) (*model.GitHubUser, error) {
	m.getUserLogins = append(m.getUserLogins, login)
	if m.getUserFn != nil {
		return m.getUserFn(ctx, login)
	}
	return &model.GitHubUser{Login: login}, nil
}

func (m *mockGitHubService) GetPullRequest(ctx context.Context, owner, repo string, number int) (*githubsvc.PullRequest, error) {
	if m.getPullRequestFn != nil {
		return m.getPullRequestFn(ctx, owner, repo, number)
	}
	return nil, goerr.New("unexpected GetPullRequest call")
}

func (m *mockGitHubService) ListWorkflowJobs(ctx context.Context, owner, repo string, runID int64) ([]*githubsvc.WorkflowJob, error) {
	if m.listWorkflowJobsFn != nil {
		return m.listWorkflowJobsFn(ctx, owner, repo, runID)
	}
	return nil, nil
}

func (m *mockGitHubService) GetCommit(ctx context.Context, owner, repo, sha string) (*model.Commit, error) {
	if m.getCommitFn != nil {
		return m.getCommitFn(ctx, owner, repo, sha)
	}
	return nil, goerr.New("unexpected GetCommit call")
}

type postedMessage struct {
	ChannelID string
	Message   *model.Message
}

type updatedMessage struct {
	ChannelID string
	Timestamp string
	Message   *model.Message
}

type addedReaction struct {
	ChannelID string
	Timestamp string
	Name      string
}

type mockSlackService struct {
	listHumanMembersFn func(ctx context.Context) ([]*model.SlackMember, error)
	postMessageFn      func(ctx context.Context, channelID string, msg *model.Message) (string, error)
	updateMessageFn    func(ctx context.Context, channelID, timestamp string, msg *model.Message) error
	addReactionFn      func(ctx context.Context, channelID, timestamp, name string) error

	listHumanMembersCalls int
	postedMessages        []postedMessage
	updatedMessages       []updatedMessage
	addedReactions        []addedReaction
}

func (m *mockSlackService) ListHumanMembers(ctx context.Context) ([]*model.SlackMember, error) {
	m.listHumanMembersCalls++
	if m.listHumanMembersFn != nil {
		return m.listHumanMembersFn(ctx)
	}
	return nil, goerr.Wrap(slacksvc.ErrMissingScope, "failed to list users", goerr.V("scope", "users:read"))
}

func (m *mockSlackService) PostMessage(ctx context.Context, channelID string, msg *model.Message) (string, error) {
	m.postedMessages = append(m.postedMessages, postedMessage{ChannelID: channelID, Message: msg})
	if m.postMessageFn != nil {
		return m.postMessageFn(ctx, channelID, msg)
	}
	return "TS", nil
}

func (m *mockSlackService) UpdateMessage(ctx context.Context, channelID, timestamp string, msg *model.Message) error {
	m.updatedMessages = append(m.updatedMessages, updatedMessage{ChannelID: channelID, Timestamp: timestamp, Message: msg})
	if m.updateMessageFn != nil {
		return m.updateMessageFn(ctx, channelID, timestamp, msg)
	}
	return nil
}

func (m *mockSlackService) AddReaction(ctx context.Context, channelID, timestamp, name string) error {
	m.addedReactions = append(m.addedReactions, addedReaction{ChannelID: channelID, Timestamp: timestamp, Name: name})
	if m.addReactionFn != nil {
		return m.addReactionFn(ctx, channelID, timestamp, name)
	}
	return nil
}

var (
	_ githubsvc.Service = (*mockGitHubService)(nil)
	_ slacksvc.Service  = (*mockSlackService)(nil)
)
