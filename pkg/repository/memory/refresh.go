package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/repository"
)

type refreshRecordEntry struct {
	record *model.RefreshRecord
}

type refreshRepository struct {
	mu         sync.RWMutex
	records    map[string][]*refreshRecordEntry
	maxPerPull int
}

func pullKey(repo model.GitHubRepo, number int) string {
	return fmt.Sprintf("%s#%d", repo.FullName(), number)
}

func copyRecord(r *model.RefreshRecord) *model.RefreshRecord {
	c := *r
	c.LabelsAdded = slices.Clone(r.LabelsAdded)
	c.LabelsRemoved = slices.Clone(r.LabelsRemoved)
	return &c
}

func (r *refreshRepository) PutRefreshRecord(ctx context.Context, record *model.RefreshRecord) error {
	if err := repository.ValidateRefreshRecord(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := pullKey(record.Repo, record.Number)
	entries := r.records[key]
	for _, e := range entries {
		if e.record.ID == record.ID {
			e.record = copyRecord(record)
			return nil
		}
	}
	entries = append(entries, &refreshRecordEntry{record: copyRecord(record)})
	if r.maxPerPull > 0 && len(entries) > r.maxPerPull {
		entries = slices.Clone(entries[len(entries)-r.maxPerPull:])
	}
	r.records[key] = entries
	return nil
}

func (r *refreshRepository) ListRefreshRecords(ctx context.Context, repo model.GitHubRepo, number int, limit int) ([]*model.RefreshRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.records[pullKey(repo, number)]
	result := make([]*model.RefreshRecord, 0, len(entries))
	for _, e := range entries {
		result = append(result, copyRecord(e.record))
	}

	slices.SortStableFunc(result, func(a, b *model.RefreshRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
