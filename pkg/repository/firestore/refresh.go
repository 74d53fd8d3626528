package firestore

import (
	"context"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionRepo    = "repo"
	collectionPull    = "pull"
	collectionRefresh = "refresh"
)

type refreshRepository struct {
	client *firestore.Client
	root   string
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

// refreshCollection is {root}/{owner:repo}/pull/{number}/refresh
func (r *refreshRepository) refreshCollection(repo model.GitHubRepo, number int) (*firestore.CollectionRef, error) {
	repoID, err := ToFirestoreID(repo.Owner, repo.RepoName)
	if err != nil {
		return nil, err
	}

	return r.client.Collection(r.root).Doc(repoID).
		Collection(collectionPull).Doc(strconv.Itoa(number)).
		Collection(collectionRefresh), nil
}

func (r *refreshRepository) PutRefreshRecord(ctx context.Context, record *model.RefreshRecord) error {
	if err := repository.ValidateRefreshRecord(record); err != nil {
		return err
	}

	col, err := r.refreshCollection(record.Repo, record.Number)
	if err != nil {
		return err
	}

	if _, err := col.Doc(record.ID.String()).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put refresh record",
			goerr.V("recordID", record.ID),
			goerr.V("repo", record.Repo.FullName()),
			goerr.V("number", record.Number),
		)
	}

	return nil
}

func (r *refreshRepository) ListRefreshRecords(ctx context.Context, repo model.GitHubRepo, number int, limit int) ([]*model.RefreshRecord, error) {
	col, err := r.refreshCollection(repo, number)
	if err != nil {
		return nil, err
	}

	query := col.OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.RefreshRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, goerr.Wrap(repository.ErrNotFound, "refresh records not found",
					goerr.V("repo", repo.FullName()),
					goerr.V("number", number),
				)
			}
			return nil, goerr.Wrap(err, "failed to iterate refresh records",
				goerr.V("repo", repo.FullName()),
				goerr.V("number", number),
			)
		}

		var record model.RefreshRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode refresh record",
				goerr.V("docID", doc.Ref.ID),
			)
		}
		records = append(records, &record)
	}

	return records, nil
}
