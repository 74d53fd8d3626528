package memory

import "github.com/nicepulls/nicepulls/pkg/domain/interfaces"

const defaultMaxRecordsPerPull = 100

type Option func(*refreshRepository)

// WithMaxRecordsPerPull bounds the history kept per pull request. The oldest
// stored record is dropped first. Zero or less keeps everything.
func WithMaxRecordsPerPull(n int) Option {
	return func(r *refreshRepository) {
		r.maxPerPull = n
	}
}

// New creates an in-memory refresh history, for tests and for a server
// running without Firestore.
func New(options ...Option) interfaces.RefreshRepository {
	r := &refreshRepository{
		records:    make(map[string][]*refreshRecordEntry),
		maxPerPull: defaultMaxRecordsPerPull,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}
