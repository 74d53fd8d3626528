package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/repository/memory"
	"github.com/nicepulls/nicepulls/pkg/repository/testhelper"
)

func TestMemoryRefreshRepository(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}

func TestMaxRecordsPerPull(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(memory.WithMaxRecordsPerPull(2))
	ghRepo := model.GitHubRepo{Owner: "drivy", RepoName: "drivy-rails"}
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := range 3 {
		gt.NoError(t, repo.PutRefreshRecord(ctx, &model.RefreshRecord{
			ID:        types.RecordID(fmt.Sprintf("r%d", i)),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Repo:      ghRepo,
			Number:    7,
		}))
	}
	gt.NoError(t, repo.PutRefreshRecord(ctx, &model.RefreshRecord{
		ID: "other", Timestamp: base, Repo: ghRepo, Number: 8,
	}))

	records := gt.R1(repo.ListRefreshRecords(ctx, ghRepo, 7, 0)).NoError(t)
	gt.V(t, len(records)).Equal(2)
	gt.V(t, records[0].ID).Equal(types.RecordID("r2"))
	gt.V(t, records[1].ID).Equal(types.RecordID("r1"))

	others := gt.R1(repo.ListRefreshRecords(ctx, ghRepo, 8, 0)).NoError(t)
	gt.V(t, len(others)).Equal(1)
}
