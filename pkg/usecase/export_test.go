package usecase

import (
	"context"

	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

func WatchPageForTest(uc *UseCase, ctx context.Context, page interfaces.HostPage, target *model.PullRequestTarget, session model.Session) error {
	return uc.watchPage(ctx, page, target, session)
}

var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	WithRetryForTest                   = withRetry
)
