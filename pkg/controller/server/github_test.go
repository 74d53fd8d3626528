package server_test

import (
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/controller/server"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

func pullRequestEvent(action string, changes *github.EditChange) *github.PullRequestEvent {
	return &github.PullRequestEvent{
		Action:  github.String(action),
		Changes: changes,
		PullRequest: &github.PullRequest{
			Number: github.Int(42),
		},
		Repo: &github.Repository{
			Name:  github.String("drivy-rails"),
			Owner: &github.User{Login: github.String("drivy")},
		},
		Installation: &github.Installation{ID: github.Int64(99)},
	}
}

func TestGitHubEventToJob(t *testing.T) {
	for _, action := range []string{"opened", "reopened", "synchronize"} {
		t.Run(action+" refreshes", func(t *testing.T) {
			job := server.GitHubEventToJobForTest(pullRequestEvent(action, nil))
			gt.V(t, job.Kind).Equal(server.JobRefreshForTest)
			gt.V(t, job.Target.Number).Equal(42)
			gt.V(t, job.Target.FullName()).Equal("drivy/drivy-rails")
			gt.V(t, job.Target.InstallID).Equal(types.GitHubAppInstallID(99))
		})
	}

	t.Run("body edit", func(t *testing.T) {
		changes := &github.EditChange{Body: &github.EditBody{From: github.String("old")}}
		job := server.GitHubEventToJobForTest(pullRequestEvent("edited", changes))
		gt.V(t, job.Kind).Equal(server.JobBodyEditedForTest)
	})

	t.Run("title only edit is ignored", func(t *testing.T) {
		changes := &github.EditChange{Title: &github.EditTitle{From: github.String("old")}}
		gt.True(t, server.GitHubEventToJobForTest(pullRequestEvent("edited", changes)) == nil)
	})

	t.Run("closed is ignored", func(t *testing.T) {
		gt.True(t, server.GitHubEventToJobForTest(pullRequestEvent("closed", nil)) == nil)
	})

	t.Run("installation events are ignored", func(t *testing.T) {
		gt.True(t, server.GitHubEventToJobForTest(&github.InstallationEvent{}) == nil)
		gt.True(t, server.GitHubEventToJobForTest(&github.InstallationRepositoriesEvent{}) == nil)
	})

	t.Run("unsupported event is ignored", func(t *testing.T) {
		gt.True(t, server.GitHubEventToJobForTest(&github.StarEvent{}) == nil)
	})
}
