package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID             types.GoogleProjectID
	datasetID             types.BQDatasetID
	tableID               types.BQTableID
	impersonateServiceAcc string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID. Refresh records are not exported if empty",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("NICEPULLS_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("NICEPULLS_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       "refresh",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("NICEPULLS_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAcc,
			Sources:     cli.EnvVars("NICEPULLS_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
		slog.Any("ImpersonateServiceAccount", x.impersonateServiceAcc),
	)
}

// NewClient returns nil without error when no project is configured.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if x.projectID == "" {
		return nil, nil
	}
	if x.datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery dataset ID is required with project ID",
			goerr.V("projectID", x.projectID))
	}

	var clientOptions []option.ClientOption
	if x.impersonateServiceAcc != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAcc,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create impersonated token source",
				goerr.V("serviceAccount", x.impersonateServiceAcc))
		}
		clientOptions = append(clientOptions, option.WithTokenSource(ts))
	}

	return bq.New(ctx, x.projectID, x.datasetID, x.tableID, clientOptions)
}
