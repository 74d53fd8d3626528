package ghapp_test

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra/ghapp"
)

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		_, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("test-key"))
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey(""))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(0), types.GitHubAppPrivateKey("test-key"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("HTTPClient returns error with invalid key", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("invalid-key"))
		gt.NoError(t, err)

		httpClient, err := client.HTTPClient(types.GitHubAppInstallID(67890))
		gt.Error(t, err)
		gt.V(t, httpClient).Equal(nil)

		gh, err := client.GitHub(types.GitHubAppInstallID(67890))
		gt.Error(t, err)
		gt.V(t, gh).Equal(nil)
	})
}

func TestInstallationClient_Integration(t *testing.T) {
	appIDStr := os.Getenv("TEST_GITHUB_APP_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")
	owner := os.Getenv("TEST_GITHUB_OWNER")
	repoName := os.Getenv("TEST_GITHUB_REPO")

	if appIDStr == "" || privateKey == "" || owner == "" || repoName == "" {
		t.Skip("TEST_GITHUB_APP_ID, TEST_GITHUB_PRIVATE_KEY, TEST_GITHUB_OWNER and TEST_GITHUB_REPO must be set")
	}

	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	gt.NoError(t, err)

	client, err := ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))
	gt.NoError(t, err)

	ctx := context.Background()

	installID, err := client.GetInstallationIDForOwner(ctx, owner)
	gt.NoError(t, err)
	gt.V(t, installID).NotEqual(types.GitHubAppInstallID(0))

	gh, err := client.GitHub(installID)
	gt.NoError(t, err)

	prs, err := gh.ListOpenPullRequests(ctx, model.GitHubRepo{Owner: owner, RepoName: repoName})
	gt.NoError(t, err)
	t.Logf("Found %d open pull requests in %s/%s", len(prs), owner, repoName)
}
