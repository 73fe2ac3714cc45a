package model

import (
	"strings"

	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/types"
)

const defaultServerURL = "https://github.com"

// WorkflowRun identifies the running workflow and carries the raw event payload.
// It is passed explicitly to everything that needs workflow context.
type WorkflowRun struct {
	Owner     string
	Repo      string
	RunID     int64
	Job       string
	SHA       string
	Workflow  string
	EventName string
	ServerURL string
	Payload   []byte
}

// RepositoryURL returns the web URL of the repository
func (r *WorkflowRun) RepositoryURL() string {
	server := strings.TrimSuffix(r.ServerURL, "/")
	if server == "" {
		server = defaultServerURL
	}
	return server + "/" + r.Owner + "/" + r.Repo
}

// CommitURL returns the web URL of the workflow commit
func (r *WorkflowRun) CommitURL() string {
	return r.RepositoryURL() + "/commit/" + r.SHA
}

// ActionsURL returns the web URL of the repository's Actions tab
func (r *WorkflowRun) ActionsURL() string {
	return r.RepositoryURL() + "/actions"
}

// ShortSHA returns the 7 character abbreviated commit SHA
func (r *WorkflowRun) ShortSHA() string {
	if len(r.SHA) <= 7 {
		return r.SHA
	}
	return r.SHA[:7]
}

// Sender extracts the triggering actor from the payload
func (r *WorkflowRun) Sender() *GitHubSender {
	return SenderFromPayload(r.Payload)
}

// Event decodes the payload according to the event name
func (r *WorkflowRun) Event() (Event, error) {
	name, err := types.ParseEventName(r.EventName)
	if err != nil {
		return nil, err
	}
	return DecodeEvent(name, r.Payload)
}
