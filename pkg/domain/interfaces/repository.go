package interfaces

import (
	"context"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

//go:generate moq -out ../mock/refresh_repository_mock.go -pkg mock . RefreshRepository

// RefreshRepository keeps the history of description refreshes per pull request
type RefreshRepository interface {
	PutRefreshRecord(ctx context.Context, record *model.RefreshRecord) error
	// ListRefreshRecords returns the records of one pull request, newest first
	ListRefreshRecords(ctx context.Context, repo model.GitHubRepo, number int, limit int) ([]*model.RefreshRecord, error)
}
