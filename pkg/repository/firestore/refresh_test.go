package firestore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/repository"
	"github.com/nicepulls/nicepulls/pkg/repository/firestore"
	"github.com/nicepulls/nicepulls/pkg/repository/testhelper"
	"github.com/nicepulls/nicepulls/pkg/utils/testutil"
)

func TestFirestoreRefreshRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithRootCollection("nicepulls_test"))
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestNewWithoutProject(t *testing.T) {
	_, err := firestore.New(context.Background(), "", "")
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

func TestToFirestoreID(t *testing.T) {
	id, err := firestore.ToFirestoreID("owner1", "repo1")
	gt.NoError(t, err)
	gt.V(t, id).Equal("owner1:repo1")

	id, err = firestore.ToFirestoreID("my-org", "my-repo")
	gt.NoError(t, err)
	gt.V(t, id).Equal("my-org:my-repo")

	_, err = firestore.ToFirestoreID("", "repo1")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("owner1", "")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("owner:1", "repo1")
	gt.Error(t, err)
}
