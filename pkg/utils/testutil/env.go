package testutil

import (
	"os"
	"testing"

	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// BigQueryDatasetOrSkip returns the dataset integration tests write into.
func BigQueryDatasetOrSkip(t *testing.T) (types.GoogleProjectID, types.BQDatasetID) {
	t.Helper()
	projectID := GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	return types.GoogleProjectID(projectID), types.BQDatasetID(datasetID)
}

// GitHubTokenOrSkip returns a token for tests against api.github.com.
func GitHubTokenOrSkip(t *testing.T) types.GitHubToken {
	t.Helper()
	return types.GitHubToken(GetEnvOrSkip(t, "TEST_GITHUB_TOKEN"))
}
