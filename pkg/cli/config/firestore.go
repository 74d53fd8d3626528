package config

import (
	"context"
	"log/slog"

	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
	collection string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID for refresh history (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("NICEPULLS_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("NICEPULLS_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Top level collection of refresh history",
			Category:    "Firestore",
			Sources:     cli.EnvVars("NICEPULLS_FIRESTORE_COLLECTION"),
			Value:       "repo",
			Destination: &x.collection,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collection", x.collection),
	)
}

// NewRepository returns nil without error when Firestore is not enabled.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.RefreshRepository, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID, firestore.WithRootCollection(x.collection))
}
