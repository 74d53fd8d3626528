package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra"
	"github.com/nicepulls/nicepulls/pkg/repository/memory"
	"github.com/nicepulls/nicepulls/pkg/usecase"
)

func TestListRefreshHistory(t *testing.T) {
	target := &model.PullRequestTarget{GitHubRepo: testRepo, Number: 5}

	t.Run("repository is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.ListRefreshHistory(context.Background(), target, 10)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("newest first within limit", func(t *testing.T) {
		repo := memory.New()
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range 3 {
			gt.NoError(t, repo.PutRefreshRecord(context.Background(), &model.RefreshRecord{
				ID:        types.NewRecordID(),
				Timestamp: base.Add(time.Duration(i) * time.Hour),
				Repo:      testRepo,
				Number:    5,
			}))
		}

		uc := usecase.New(infra.New(infra.WithRefreshRepository(repo)))
		records, err := uc.ListRefreshHistory(context.Background(), target, 2)
		gt.NoError(t, err)
		gt.V(t, len(records)).Equal(2)
		gt.V(t, records[0].Timestamp).Equal(base.Add(2 * time.Hour))
	})
}
