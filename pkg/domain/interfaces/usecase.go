package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

type UseCase interface {
	GenerateDescription(ctx context.Context, input *model.GenerateDescriptionInput) (*model.GeneratedDescription, error)
	CreatePullRequest(ctx context.Context, input *model.GenerateDescriptionInput) (*model.PullRequest, error)

	RefreshDescription(ctx context.Context, target *model.PullRequestTarget) (*model.RefreshRecord, error)
	RefreshPullRequests(ctx context.Context, repo model.GitHubRepo, numbers []int) (*model.RefreshSummary, error)
	RefreshOpenPullRequests(ctx context.Context, input *model.RefreshOpenPullRequestsInput) (*model.RefreshSummary, error)

	SetStatus(ctx context.Context, target *model.PullRequestTarget, status model.LyriqStatus) error
	HandleBodyChanged(ctx context.Context, page HostPage, target *model.PullRequestTarget, session model.Session) (model.Session, error)
	HandlePullRequestEdited(ctx context.Context, target *model.PullRequestTarget) error
	WatchPullRequest(ctx context.Context, target *model.PullRequestTarget) error

	ListRefreshHistory(ctx context.Context, target *model.PullRequestTarget, limit int) ([]*model.RefreshRecord, error)
}
