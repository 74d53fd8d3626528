package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/mock"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
	"github.com/nicepulls/nicepulls/pkg/usecase"
)

func TestRefreshPullRequests(t *testing.T) {
	t.Run("continues after a failure", func(t *testing.T) {
		pulls := []*pullState{
			newPullState(1, "feature/a", prdesc.BuildFeatureDescription(50, "", 0, false)),
			newPullState(2, "feature/b", "broken"),
			newPullState(3, "feature/c", prdesc.BuildFeatureDescription(50, "", 0, false)),
		}
		pulls[0].files = []model.ChangedFile{{Path: "app/a.rb", LinesChanged: 3}}
		pulls[2].files = []model.ChangedFile{{Path: "spec/c_spec.rb", LinesChanged: 3}}

		gh := newGitHubMock(pulls...)
		get := gh.GetPullRequestFunc
		gh.GetPullRequestFunc = func(ctx context.Context, repo model.GitHubRepo, number int) (*model.PullRequest, error) {
			if number == 2 {
				return nil, errors.New("forbidden")
			}
			return get(ctx, repo, number)
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), fastRetry())

		summary, err := uc.RefreshPullRequests(context.Background(), testRepo, []int{1, 2, 3})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("some pull requests failed to refresh")
		gt.V(t, summary.Total).Equal(3)
		gt.V(t, summary.Success).Equal(2)
		gt.V(t, summary.Failed).Equal([]int{2})

		gt.S(t, pulls[0].body()).Contains("_0% of the diff is specs_")
		gt.S(t, pulls[2].body()).Contains("_100% of the diff is specs_")

		var order []int
		for _, call := range gh.GetPullRequestCalls() {
			order = append(order, call.Number)
		}
		gt.V(t, order).Equal([]int{1, 2, 3})
	})

	t.Run("a retryable failure recovers", func(t *testing.T) {
		pulls := []*pullState{
			newPullState(1, "feature/a", "a"),
			newPullState(2, "feature/b", "b"),
		}
		gh := newGitHubMock(pulls...)
		list := gh.ListPullRequestFilesFunc
		failed := false
		gh.ListPullRequestFilesFunc = func(ctx context.Context, repo model.GitHubRepo, number int) ([]model.ChangedFile, error) {
			if number == 2 && !failed {
				failed = true
				return nil, errors.Join(types.ErrRetryable, errors.New("502 bad gateway"))
			}
			return list(ctx, repo, number)
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), fastRetry())

		summary, err := uc.RefreshPullRequests(context.Background(), testRepo, []int{1, 2})
		gt.NoError(t, err)
		gt.V(t, summary.Success).Equal(2)
		gt.V(t, len(summary.Failed)).Equal(0)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		gh := newGitHubMock(newPullState(1, "feature/a", "a"))
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), fastRetry())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary, err := uc.RefreshPullRequests(ctx, testRepo, []int{1})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.V(t, summary.Success).Equal(0)
		gt.V(t, len(gh.GetPullRequestCalls())).Equal(0)
	})

	t.Run("installation is resolved once", func(t *testing.T) {
		gh := newGitHubMock(newPullState(1, "feature/a", "a"), newPullState(2, "feature/b", "b"))
		app := &mock.GitHubAppMock{
			GetInstallationIDForOwnerFunc: func(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
				return 77, nil
			},
			GitHubFunc: func(installID types.GitHubAppInstallID) (interfaces.GitHub, error) {
				return gh, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubApp(app)), fastRetry())

		_, err := uc.RefreshPullRequests(context.Background(), testRepo, []int{1, 2})
		gt.NoError(t, err)
		gt.V(t, len(app.GetInstallationIDForOwnerCalls())).Equal(1)
		for _, call := range app.GitHubCalls() {
			gt.V(t, call.InstallID).Equal(types.GitHubAppInstallID(77))
		}
	})
}

func TestRefreshOpenPullRequests(t *testing.T) {
	pulls := []*pullState{
		newPullState(1, "feature/a", "a", "lyriq"),
		newPullState(2, "feature/b", "b"),
		newPullState(3, "feature/c", "c", "lyriq"),
	}
	pulls[2].pr.Author = "someone-else"

	t.Run("filters by label and author", func(t *testing.T) {
		gh := newGitHubMock(pulls...)
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), fastRetry())

		summary, err := uc.RefreshOpenPullRequests(context.Background(), &model.RefreshOpenPullRequestsInput{
			GitHubRepo: testRepo,
			Author:     "octocat",
			Label:      "lyriq",
		})
		gt.NoError(t, err)
		gt.V(t, summary.Total).Equal(1)
		gt.V(t, gh.GetPullRequestCalls()[0].Number).Equal(1)
	})

	t.Run("no filter takes every open pull request", func(t *testing.T) {
		gh := newGitHubMock(pulls...)
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), fastRetry())

		summary, err := uc.RefreshOpenPullRequests(context.Background(), &model.RefreshOpenPullRequestsInput{GitHubRepo: testRepo})
		gt.NoError(t, err)
		gt.V(t, summary.Total).Equal(3)
		gt.V(t, summary.Success).Equal(3)
	})

	t.Run("invalid repository", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHub(newGitHubMock())))
		_, err := uc.RefreshOpenPullRequests(context.Background(), &model.RefreshOpenPullRequestsInput{})
		gt.Error(t, err)
	})
}
