package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

const defaultHistoryLimit = 20

func (x *UseCase) ListRefreshHistory(ctx context.Context, target *model.PullRequestTarget, limit int) ([]*model.RefreshRecord, error) {
	repo := x.clients.RefreshRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "refresh history requires a repository. Please configure Firestore")
	}
	if err := target.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid target")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := repo.ListRefreshRecords(ctx, target.GitHubRepo, target.Number, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list refresh records",
			goerr.V("repo", target.FullName()),
			goerr.V("number", target.Number),
		)
	}
	return records, nil
}
