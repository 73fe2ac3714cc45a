package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/service/github"
)

func newTestService(t *testing.T, mux *http.ServeMux) github.Service {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	svc, err := github.NewWithToken(context.Background(), "test-token", github.WithAPIURL(srv.URL))
	gt.NoError(t, err).Required()
	return svc
}

func TestNewWithToken(t *testing.T) {
	t.Run("returns error when token is empty", func(t *testing.T) {
		_, err := github.NewWithToken(context.Background(), "")
		gt.Value(t, err).NotNil()
	})

	t.Run("creates service when token is provided", func(t *testing.T) {
		svc, err := github.NewWithToken(context.Background(), "test-token")
		gt.NoError(t, err).Required()
		gt.Value(t, svc).NotNil()
	})
}

func TestNewWithApp(t *testing.T) {
	t.Run("returns error for invalid private key", func(t *testing.T) {
		_, err := github.NewWithApp(1, 2, "not a pem key")
		gt.Value(t, err).NotNil()
	})
}

func TestGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/users/namoscato", func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
		_, _ = fmt.Fprint(w, `{"login":"namoscato","name":"Nick Amoscato","avatar_url":"github.com/namoscato"}`)
	})

	user, err := newTestService(t, mux).GetUser(context.Background(), "namoscato")
	gt.NoError(t, err).Required()
	gt.Value(t, user.Login).Equal("namoscato")
	gt.Value(t, user.Name).Equal("Nick Amoscato")
	gt.Value(t, user.AvatarURL).Equal("github.com/namoscato")
}

func TestGetUser_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	_, err := newTestService(t, mux).GetUser(context.Background(), "ghost")
	gt.Value(t, err).NotNil()
}

func TestGetPullRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/repos/namoscato/action-testing/pulls/123", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"number":123,"merged_by":{"login":"namoscato","avatar_url":"github.com/namoscato"}}`)
	})
	mux.HandleFunc("GET /api/v3/repos/namoscato/action-testing/pulls/124", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"number":124,"merged_by":null}`)
	})
	svc := newTestService(t, mux)

	t.Run("merged", func(t *testing.T) {
		pr, err := svc.GetPullRequest(context.Background(), "namoscato", "action-testing", 123)
		gt.NoError(t, err).Required()
		gt.Value(t, pr.Number).Equal(123)
		gt.Value(t, pr.MergedBy).NotNil()
		gt.Value(t, pr.MergedBy.Login).Equal("namoscato")
		gt.Value(t, pr.MergedBy.AvatarURL).Equal("github.com/namoscato")
	})

	t.Run("not merged", func(t *testing.T) {
		pr, err := svc.GetPullRequest(context.Background(), "namoscato", "action-testing", 124)
		gt.NoError(t, err).Required()
		gt.Value(t, pr.MergedBy).Nil()
	})
}

func TestListWorkflowJobs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/repos/namoscato/action-testing/actions/runs/42/jobs", func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Query().Get("per_page")).Equal("100")
		gt.Value(t, r.URL.Query().Get("filter")).Equal("latest")

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 0, 1:
			w.Header().Set("Link", fmt.Sprintf(`<%s?page=2>; rel="next"`, "http://"+r.Host+r.URL.Path))
			_, _ = fmt.Fprint(w, `{"total_count":2,"jobs":[{"name":"JOB 1","started_at":"2022-09-10T00:00:01Z","steps":[
				{"name":"Set up job","conclusion":"success","completed_at":"2022-09-10T00:00:02Z"},
				{"name":"Skipped","conclusion":"skipped","completed_at":"2022-09-10T00:00:02Z"},
				{"name":"Pending","status":"queued"}
			]}]}`)
		case 2:
			_, _ = fmt.Fprint(w, `{"total_count":2,"jobs":[{"name":"JOB 2","started_at":"2022-09-10T00:00:06Z","steps":[]}]}`)
		default:
			t.Errorf("unexpected page %d", page)
		}
	})

	jobs, err := newTestService(t, mux).ListWorkflowJobs(context.Background(), "namoscato", "action-testing", 42)
	gt.NoError(t, err).Required()
	gt.Array(t, jobs).Length(2).Required()

	gt.Value(t, jobs[0].Name).Equal("JOB 1")
	gt.Value(t, *jobs[0].StartedAt).Equal(time.Date(2022, 9, 10, 0, 0, 1, 0, time.UTC))
	gt.Array(t, jobs[0].Steps).Length(3).Required()
	gt.B(t, jobs[0].Steps[0].IsCompleted()).True()
	gt.B(t, jobs[0].Steps[1].IsCompleted()).False()
	gt.B(t, jobs[0].Steps[2].IsCompleted()).False()
	gt.Value(t, jobs[0].Steps[2].CompletedAt).Nil()

	gt.Value(t, jobs[1].Name).Equal("JOB 2")
}

func TestGetCommit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/repos/namoscato/action-testing/commits/05b16c3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"sha":"05b16c3","html_url":"github.com/commit","commit":{"message":"COMMIT-MESSAGE\n\nbody"}}`)
	})

	commit, err := newTestService(t, mux).GetCommit(context.Background(), "namoscato", "action-testing", "05b16c3")
	gt.NoError(t, err).Required()
	gt.Value(t, commit.Message).Equal("COMMIT-MESSAGE\n\nbody")
	gt.Value(t, commit.URL).Equal("github.com/commit")
}

func TestIntegration(t *testing.T) {
	token := os.Getenv("TEST_GITHUB_TOKEN")
	if token == "" {
		t.Skip("TEST_GITHUB_TOKEN is not set")
	}

	ctx := context.Background()
	svc, err := github.NewWithToken(ctx, token)
	gt.NoError(t, err).Required()

	user, err := svc.GetUser(ctx, "octocat")
	gt.NoError(t, err).Required()
	gt.Value(t, user.Login).Equal("octocat")
	t.Logf("Found user: %s (%s)", user.Login, user.Name)
}
