package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/repository"
)

type Option func(*refreshRepository)

// WithRootCollection changes the top level collection, so that several
// deployments can share one database. Default is "repo".
func WithRootCollection(name string) Option {
	return func(r *refreshRepository) {
		if name != "" {
			r.root = name
		}
	}
}

// New connects to Firestore. An empty databaseID means the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.RefreshRepository, error) {
	if projectID == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "Firestore project ID is empty")
	}

	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	r := &refreshRepository{
		client: client,
		root:   collectionRepo,
	}
	for _, opt := range options {
		opt(r)
	}
	return r, nil
}
