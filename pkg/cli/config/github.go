package config

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra/githubapi"
	"github.com/nicepulls/nicepulls/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// GitHub holds the token based credential and API endpoint. The token comes
// from the flag or, when empty, from the secrets file.
type GitHub struct {
	token       types.GitHubToken
	secretsFile string
	apiURL      string

	once      sync.Once
	loaded    types.GitHubToken
	loadError error
}

type secretsFile struct {
	GitHubBearerToken string `json:"github_bearer_token"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub bearer token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("NICEPULLS_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "secrets-file",
			Usage:       "JSON file holding github_bearer_token, used when no token is given",
			Category:    "GitHub",
			Destination: &x.secretsFile,
			Sources:     cli.EnvVars("NICEPULLS_SECRETS_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("NICEPULLS_GITHUB_API_URL"),
		},
	}
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("SecretsFile", x.secretsFile),
		slog.String("APIURL", x.apiURL),
	)
}

// APIOptions are shared by the token client and the App client.
func (x *GitHub) APIOptions() []githubapi.Option {
	if x.apiURL == "" {
		return nil
	}
	return []githubapi.Option{githubapi.WithBaseURL(x.apiURL)}
}

// Token returns the configured token. The secrets file is read at most once.
func (x *GitHub) Token() (types.GitHubToken, error) {
	if x.token != "" {
		return x.token, nil
	}
	if x.secretsFile == "" {
		return "", nil
	}

	x.once.Do(func() {
		x.loaded, x.loadError = loadSecretsFile(x.secretsFile)
	})
	return x.loaded, x.loadError
}

func loadSecretsFile(path string) (types.GitHubToken, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open secrets file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	var secrets secretsFile
	if err := json.NewDecoder(fd).Decode(&secrets); err != nil {
		return "", goerr.Wrap(err, "failed to decode secrets file", goerr.V("path", path))
	}
	if secrets.GitHubBearerToken == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "github_bearer_token is empty", goerr.V("path", path))
	}
	return types.GitHubToken(secrets.GitHubBearerToken), nil
}

// NewClient returns nil without error when no token is available.
func (x *GitHub) NewClient(ctx context.Context) (*githubapi.Client, error) {
	token, err := x.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return githubapi.NewWithToken(ctx, token, x.APIOptions()...)
}
