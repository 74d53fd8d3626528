package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/repository"
)

// TestAll runs all test cases for RefreshRepository
// This is the main entry point for testing any RefreshRepository implementation
func TestAll(t *testing.T, repo interfaces.RefreshRepository) {
	t.Run("PutAndList", func(t *testing.T) {
		TestPutAndList(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("Isolation", func(t *testing.T) {
		TestIsolation(t, repo)
	})
	t.Run("InvalidRecord", func(t *testing.T) {
		TestInvalidRecord(t, repo)
	})
}

func uniqueRepo() model.GitHubRepo {
	return model.GitHubRepo{
		Owner:    fmt.Sprintf("owner-%s", uuid.New().String()[:8]),
		RepoName: fmt.Sprintf("repo-%s", uuid.New().String()[:8]),
	}
}

func newRecord(repo model.GitHubRepo, number int, ts time.Time) *model.RefreshRecord {
	return &model.RefreshRecord{
		ID:             types.NewRecordID(),
		Timestamp:      ts,
		Repo:           repo,
		Number:         number,
		Branch:         "feature/x",
		Kind:           model.BranchKindFeature,
		SpecPercentage: 25,
		Status:         model.LyriqStatusNotYetStarted,
		LabelsAdded:    []string{"has_translations"},
		BodyChanged:    true,
	}
}

// TestPutAndList stores records and reads them back newest first
func TestPutAndList(t *testing.T, repo interfaces.RefreshRepository) {
	ctx := context.Background()
	ghRepo := uniqueRepo()
	base := time.Now().UTC().Truncate(time.Millisecond)

	r1 := newRecord(ghRepo, 1, base)
	r2 := newRecord(ghRepo, 1, base.Add(time.Minute))
	r3 := newRecord(ghRepo, 1, base.Add(2*time.Minute))
	for _, r := range []*model.RefreshRecord{r2, r1, r3} {
		gt.NoError(t, repo.PutRefreshRecord(ctx, r))
	}

	records, err := repo.ListRefreshRecords(ctx, ghRepo, 1, 0)
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(3)
	gt.V(t, records[0].ID).Equal(r3.ID)
	gt.V(t, records[1].ID).Equal(r2.ID)
	gt.V(t, records[2].ID).Equal(r1.ID)
	gt.V(t, records[0].LabelsAdded).Equal([]string{"has_translations"})
	gt.V(t, records[0].Repo).Equal(ghRepo)
	gt.True(t, records[0].Timestamp.Equal(r3.Timestamp))

	limited, err := repo.ListRefreshRecords(ctx, ghRepo, 1, 2)
	gt.NoError(t, err)
	gt.V(t, len(limited)).Equal(2)
	gt.V(t, limited[0].ID).Equal(r3.ID)
}

// TestOverwrite puts the same record twice
func TestOverwrite(t *testing.T, repo interfaces.RefreshRepository) {
	ctx := context.Background()
	ghRepo := uniqueRepo()

	r := newRecord(ghRepo, 2, time.Now().UTC())
	gt.NoError(t, repo.PutRefreshRecord(ctx, r))

	r.Status = model.LyriqStatusDone
	gt.NoError(t, repo.PutRefreshRecord(ctx, r))

	records, err := repo.ListRefreshRecords(ctx, ghRepo, 2, 0)
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(1)
	gt.V(t, records[0].Status).Equal(model.LyriqStatusDone)
}

// TestIsolation checks that records of other pull requests do not leak
func TestIsolation(t *testing.T, repo interfaces.RefreshRepository) {
	ctx := context.Background()
	ghRepo := uniqueRepo()
	other := uniqueRepo()

	gt.NoError(t, repo.PutRefreshRecord(ctx, newRecord(ghRepo, 3, time.Now().UTC())))
	gt.NoError(t, repo.PutRefreshRecord(ctx, newRecord(ghRepo, 4, time.Now().UTC())))
	gt.NoError(t, repo.PutRefreshRecord(ctx, newRecord(other, 3, time.Now().UTC())))

	records, err := repo.ListRefreshRecords(ctx, ghRepo, 3, 0)
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(1)

	empty, err := repo.ListRefreshRecords(ctx, ghRepo, 99, 0)
	gt.NoError(t, err)
	gt.V(t, len(empty)).Equal(0)
}

// TestInvalidRecord rejects records that cannot be keyed
func TestInvalidRecord(t *testing.T, repo interfaces.RefreshRepository) {
	ctx := context.Background()

	noID := newRecord(uniqueRepo(), 1, time.Now())
	noID.ID = ""
	err := repo.PutRefreshRecord(ctx, noID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	noNumber := newRecord(uniqueRepo(), 0, time.Now())
	gt.True(t, errors.Is(repo.PutRefreshRecord(ctx, noNumber), repository.ErrInvalidInput))

	noOwner := newRecord(model.GitHubRepo{RepoName: "x"}, 1, time.Now())
	gt.True(t, errors.Is(repo.PutRefreshRecord(ctx, noOwner), repository.ErrInvalidInput))
}
