package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/mock"
	"github.com/nicepulls/nicepulls/pkg/infra"
	"github.com/nicepulls/nicepulls/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHubApp()).Equal(nil)
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.RefreshRepository()).Equal(nil)
	})

	t.Run("WithGitHubApp option sets GitHub App client", func(t *testing.T) {
		mockApp := &mock.GitHubAppMock{}
		clients := infra.New(infra.WithGitHubApp(mockApp))
		gt.V(t, clients.GitHubApp()).Equal(mockApp)
	})

	t.Run("WithGitHub option sets token client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockBQ := &mock.BigQueryMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithRefreshRepository(repo),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.RefreshRepository()).Equal(repo)
	})
}
