package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub GitHubApp HostPage

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub is the REST surface the automation needs. Errors worth retrying wrap
// types.ErrRetryable.
type GitHub interface {
	GetPullRequest(ctx context.Context, repo model.GitHubRepo, number int) (*model.PullRequest, error)
	ListOpenPullRequests(ctx context.Context, repo model.GitHubRepo) ([]*model.PullRequest, error)
	ListPullRequestFiles(ctx context.Context, repo model.GitHubRepo, number int) ([]model.ChangedFile, error)
	ListPullRequestCommits(ctx context.Context, repo model.GitHubRepo, number int) ([]model.Commit, error)
	UpdatePullRequest(ctx context.Context, repo model.GitHubRepo, number int, update *model.PullRequestUpdate) (*model.PullRequest, error)
	CreatePullRequest(ctx context.Context, repo model.GitHubRepo, input *model.NewPullRequest) (*model.PullRequest, error)
	Compare(ctx context.Context, repo model.GitHubRepo, base, head string) (*model.Comparison, error)

	AddLabels(ctx context.Context, repo model.GitHubRepo, number int, labels []string) error
	RemoveLabel(ctx context.Context, repo model.GitHubRepo, number int, label string) error
	AddAssignees(ctx context.Context, repo model.GitHubRepo, number int, logins []string) error
	GetCurrentUser(ctx context.Context) (string, error)
}

type GitHubApp interface {
	// GitHub returns a client acting as the given installation.
	GitHub(installID types.GitHubAppInstallID) (GitHub, error)
	HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error)
	GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error)
}

// HostPage is the narrow view of a pull request page the body-change handling
// works against.
type HostPage interface {
	ReadField(ctx context.Context, field model.PageField) (string, error)
	ReadList(ctx context.Context, list model.PageList) ([]string, error)
	WriteField(ctx context.Context, field model.PageField, value string) error
	// OnChange calls fn for every change of the page until ctx is done or fn
	// fails.
	OnChange(ctx context.Context, fn func(ctx context.Context) error) error
}
