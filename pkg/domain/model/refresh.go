package model

import (
	"time"

	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

// RefreshRecord is the audit entry of one description refresh.
type RefreshRecord struct {
	ID              types.RecordID `json:"id" bigquery:"id" firestore:"id"`
	Timestamp       time.Time      `json:"timestamp" bigquery:"timestamp" firestore:"timestamp"`
	Repo            GitHubRepo     `json:"repo" bigquery:"repo" firestore:"repo"`
	Number          int            `json:"number" bigquery:"number" firestore:"number"`
	Branch          string         `json:"branch" bigquery:"branch" firestore:"branch"`
	Kind            BranchKind     `json:"kind" bigquery:"kind" firestore:"kind"`
	SpecPercentage  int            `json:"spec_percentage" bigquery:"spec_percentage" firestore:"spec_percentage"`
	LocalesComplete bool           `json:"locales_complete" bigquery:"locales_complete" firestore:"locales_complete"`
	Status          LyriqStatus    `json:"status,omitempty" bigquery:"status" firestore:"status"`
	LabelsAdded     []string       `json:"labels_added" bigquery:"labels_added" firestore:"labels_added"`
	LabelsRemoved   []string       `json:"labels_removed" bigquery:"labels_removed" firestore:"labels_removed"`
	BodyChanged     bool           `json:"body_changed" bigquery:"body_changed" firestore:"body_changed"`
}

// RefreshSummary is the outcome of a bulk refresh.
type RefreshSummary struct {
	Total   int
	Success int
	Failed  []int
}

// RefreshRawRecord is the BigQuery row of a RefreshRecord. The storage write
// API takes timestamps as microseconds.
type RefreshRawRecord struct {
	RefreshRecord
	Timestamp int64 `json:"timestamp"`
}

func (x *RefreshRecord) Raw() *RefreshRawRecord {
	return &RefreshRawRecord{
		RefreshRecord: *x,
		Timestamp:     x.Timestamp.UnixMicro(),
	}
}
