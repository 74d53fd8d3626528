package usecase_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nicepulls/nicepulls/pkg/domain/mock"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/usecase"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

var testRepo = model.GitHubRepo{Owner: "drivy", RepoName: "drivy-rails"}

// pullState is the server side of a fake pull request.
type pullState struct {
	mutex   sync.Mutex
	pr      model.PullRequest
	files   []model.ChangedFile
	commits []model.Commit
}

func (x *pullState) body() string {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.pr.Body
}

func (x *pullState) labels() []string {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return slices.Clone(x.pr.Labels)
}

func newPullState(number int, head, body string, labels ...string) *pullState {
	return &pullState{
		pr: model.PullRequest{
			Repo:    testRepo,
			Number:  number,
			Title:   "PR title",
			Body:    body,
			HeadRef: head,
			BaseRef: "main",
			Labels:  labels,
			Author:  "octocat",
		},
	}
}

// newGitHubMock serves the given pull requests and applies edits to them.
func newGitHubMock(pulls ...*pullState) *mock.GitHubMock {
	find := func(number int) *pullState {
		for _, p := range pulls {
			if p.pr.Number == number {
				return p
			}
		}
		return nil
	}

	return &mock.GitHubMock{
		GetPullRequestFunc: func(ctx context.Context, repo model.GitHubRepo, number int) (*model.PullRequest, error) {
			p := find(number)
			p.mutex.Lock()
			defer p.mutex.Unlock()
			pr := p.pr
			pr.Labels = slices.Clone(p.pr.Labels)
			return &pr, nil
		},
		ListOpenPullRequestsFunc: func(ctx context.Context, repo model.GitHubRepo) ([]*model.PullRequest, error) {
			var resp []*model.PullRequest
			for _, p := range pulls {
				pr := p.pr
				pr.Labels = slices.Clone(p.pr.Labels)
				resp = append(resp, &pr)
			}
			return resp, nil
		},
		ListPullRequestFilesFunc: func(ctx context.Context, repo model.GitHubRepo, number int) ([]model.ChangedFile, error) {
			return find(number).files, nil
		},
		ListPullRequestCommitsFunc: func(ctx context.Context, repo model.GitHubRepo, number int) ([]model.Commit, error) {
			return find(number).commits, nil
		},
		UpdatePullRequestFunc: func(ctx context.Context, repo model.GitHubRepo, number int, update *model.PullRequestUpdate) (*model.PullRequest, error) {
			p := find(number)
			p.mutex.Lock()
			defer p.mutex.Unlock()
			if update.Body != nil {
				p.pr.Body = *update.Body
			}
			if update.Title != nil {
				p.pr.Title = *update.Title
			}
			pr := p.pr
			return &pr, nil
		},
		AddLabelsFunc: func(ctx context.Context, repo model.GitHubRepo, number int, labels []string) error {
			p := find(number)
			p.mutex.Lock()
			defer p.mutex.Unlock()
			for _, l := range labels {
				if !slices.Contains(p.pr.Labels, l) {
					p.pr.Labels = append(p.pr.Labels, l)
				}
			}
			return nil
		},
		RemoveLabelFunc: func(ctx context.Context, repo model.GitHubRepo, number int, label string) error {
			p := find(number)
			p.mutex.Lock()
			defer p.mutex.Unlock()
			p.pr.Labels = slices.DeleteFunc(p.pr.Labels, func(l string) bool { return l == label })
			return nil
		},
	}
}

func localeFiles(names ...string) []model.ChangedFile {
	var files []model.ChangedFile
	for _, name := range names {
		files = append(files, model.ChangedFile{
			Path:         "config/locales/" + name,
			LinesChanged: 4,
			Status:       model.FileStatusModified,
		})
	}
	return files
}

func allLocaleFiles() []model.ChangedFile {
	return localeFiles("en.yml", "fr.yml", "nb_NO.yml", "de.yml", "es.yml", "nl_BE.yml")
}

func fastRetry() usecase.Option {
	return usecase.WithRetry(usecase.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	})
}

func fixedTimeCtx() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	})
}
