package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
	"github.com/nicepulls/nicepulls/pkg/utils/errutil"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// RefreshDescription brings the description of one pull request up to date
// with its diff and manages the translation labels. Running it twice in a row
// changes nothing the second time.
func (x *UseCase) RefreshDescription(ctx context.Context, target *model.PullRequestTarget) (*model.RefreshRecord, error) {
	if err := target.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid refresh target")
	}
	ctx = logging.WithPullRequest(ctx, target.FullName(), target.Number)

	gh, err := x.githubClient(ctx, target.GitHubRepo, target.InstallID)
	if err != nil {
		return nil, err
	}

	var record *model.RefreshRecord
	if err := withRetry(ctx, x.retry, func(ctx context.Context) error {
		var err error
		record, err = x.refresh(ctx, gh, target)
		return err
	}); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("description refreshed",
		slog.String("kind", string(record.Kind)),
		slog.Bool("body_changed", record.BodyChanged),
		slog.Any("labels_added", record.LabelsAdded),
		slog.Any("labels_removed", record.LabelsRemoved),
	)

	x.saveRefreshRecord(ctx, record)
	return record, nil
}

func (x *UseCase) refresh(ctx context.Context, gh interfaces.GitHub, target *model.PullRequestTarget) (*model.RefreshRecord, error) {
	cv := x.conventions
	repo := target.GitHubRepo

	pr, err := gh.GetPullRequest(ctx, repo, target.Number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request", goerr.V("number", target.Number))
	}
	files, err := gh.ListPullRequestFiles(ctx, repo, target.Number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull request files", goerr.V("number", target.Number))
	}

	record := &model.RefreshRecord{
		ID:              types.NewRecordID(),
		Timestamp:       logging.CtxTime(ctx),
		Repo:            repo,
		Number:          target.Number,
		Branch:          pr.HeadRef,
		Kind:            cv.ClassifyBranch(pr.HeadRef),
		LocalesComplete: cv.AllLocalesPresent(files),
		LabelsAdded:     []string{},
		LabelsRemoved:   []string{},
	}

	body := pr.Body
	if record.Kind == model.BranchKindTranslation {
		completion := prdesc.RenderLocaleCompletion(cv.LocaleCompletion(files))
		body = prdesc.ReplaceLocaleCompletion(body, completion)
	} else {
		commits, err := gh.ListPullRequestCommits(ctx, repo, target.Number)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull request commits", goerr.V("number", target.Number))
		}

		record.SpecPercentage = cv.SpecPercentage(files)
		body = prdesc.ReplaceSpecPercentage(body, record.SpecPercentage)
		body = prdesc.ReconcileCommits(body, commits)

		hasSource := cv.HasSourceLocale(files)
		if hasSource {
			body = prdesc.InsertLyriqLine(body, record.Kind)
		}

		body, err = x.transitTranslation(ctx, gh, pr, record, body, hasSource)
		if err != nil {
			return nil, err
		}
	}

	if status, ok := prdesc.LyriqStatusOf(body); ok {
		record.Status = status
	}

	if body != pr.Body {
		if _, err := gh.UpdatePullRequest(ctx, repo, target.Number, &model.PullRequestUpdate{Body: &body}); err != nil {
			return nil, goerr.Wrap(err, "failed to update pull request body", goerr.V("number", target.Number))
		}
		record.BodyChanged = true
	}

	return record, nil
}

// transitTranslation moves the translation labels and the Lyriq status
// forward. All locales present means done; a first source locale change
// opens a translation round.
func (x *UseCase) transitTranslation(ctx context.Context, gh interfaces.GitHub, pr *model.PullRequest, record *model.RefreshRecord, body string, hasSource bool) (string, error) {
	labels := x.conventions.Labels

	addLabel := func(name string) error {
		if err := gh.AddLabels(ctx, pr.Repo, pr.Number, []string{name}); err != nil {
			return goerr.Wrap(err, "failed to add label", goerr.V("label", name))
		}
		record.LabelsAdded = append(record.LabelsAdded, name)
		return nil
	}

	switch {
	case record.LocalesComplete:
		body = prdesc.SetLyriqStatus(body, model.LyriqStatusDone)

		if pr.HasLabel(labels.HasTranslations) {
			if err := gh.RemoveLabel(ctx, pr.Repo, pr.Number, labels.HasTranslations); err != nil {
				return "", goerr.Wrap(err, "failed to remove label", goerr.V("label", labels.HasTranslations))
			}
			record.LabelsRemoved = append(record.LabelsRemoved, labels.HasTranslations)
		}
		if !pr.HasLabel(labels.TranslationsDone) {
			if err := addLabel(labels.TranslationsDone); err != nil {
				return "", err
			}
		}

	case hasSource && !pr.HasLabel(labels.HasTranslations) && !pr.HasLabel(labels.TranslationsDone):
		if err := addLabel(labels.HasTranslations); err != nil {
			return "", err
		}
		if prdesc.HasLyriqPullLink(body, pr.Repo) {
			body = prdesc.SetLyriqStatus(body, model.LyriqStatusInProgress)
		}
	}

	return body, nil
}

// saveRefreshRecord writes the audit record to the configured sinks. A sink
// failure is reported but does not fail the refresh, which already happened.
func (x *UseCase) saveRefreshRecord(ctx context.Context, record *model.RefreshRecord) {
	if bq := x.clients.BigQuery(); bq != nil {
		if err := insertRefreshRecord(ctx, bq, record); err != nil {
			errutil.HandleError(ctx, "failed to insert refresh record to BigQuery", err)
		}
	}

	if repo := x.clients.RefreshRepository(); repo != nil {
		if err := repo.PutRefreshRecord(ctx, record); err != nil {
			errutil.HandleError(ctx, "failed to save refresh record", err)
		}
	}
}

func insertRefreshRecord(ctx context.Context, bq interfaces.BigQuery, record *model.RefreshRecord) error {
	schema, err := createOrUpdateBigQueryTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record.Raw()); err != nil {
		return goerr.Wrap(err, "failed to insert refresh record", goerr.V("id", record.ID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.RefreshRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer refresh record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
