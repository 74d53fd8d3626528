package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra/githubapi"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey

	// installation transports cache their access token until it expires
	mutex      sync.Mutex
	transports map[types.GitHubAppInstallID]*ghinstallation.Transport

	apiOptions []githubapi.Option
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithAPIOption is applied to every installation client, e.g. to target
// GitHub Enterprise.
func WithAPIOption(opt githubapi.Option) Option {
	return func(x *Client) {
		x.apiOptions = append(x.apiOptions, opt)
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:      appID,
		pem:        pem,
		transports: make(map[types.GitHubAppInstallID]*ghinstallation.Transport),
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) installationTransport(installID types.GitHubAppInstallID) (*ghinstallation.Transport, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	if itr, ok := x.transports[installID]; ok {
		return itr, nil
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client", goerr.V("installID", installID))
	}
	x.transports[installID] = itr
	return itr, nil
}

func (x *Client) HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	itr, err := x.installationTransport(installID)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: itr}, nil
}

// GitHub returns a REST client authenticated as the installation.
func (x *Client) GitHub(installID types.GitHubAppInstallID) (interfaces.GitHub, error) {
	httpClient, err := x.HTTPClient(installID)
	if err != nil {
		return nil, err
	}
	client, err := githubapi.New(httpClient, x.apiOptions...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}

// GetInstallationIDForOwner finds the installation for an organization,
// falling back to a user account.
func (x *Client) GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return 0, err
	}

	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}

		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner",
		goerr.V("owner", owner),
	)
}
