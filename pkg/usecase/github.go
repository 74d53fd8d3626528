package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

// githubClient picks the client to act with. An explicit installation wins,
// then the token client, then the App installation of the repository owner.
func (x *UseCase) githubClient(ctx context.Context, repo model.GitHubRepo, installID types.GitHubAppInstallID) (interfaces.GitHub, error) {
	app := x.clients.GitHubApp()

	if installID != 0 && app != nil {
		return x.appClient(installID)
	}

	if gh := x.clients.GitHub(); gh != nil {
		return gh, nil
	}

	if app == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "neither GitHub token nor GitHub App is configured")
	}

	installID, err := app.GetInstallationIDForOwner(ctx, repo.Owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up GitHub App installation", goerr.V("owner", repo.Owner))
	}
	return x.appClient(installID)
}

func (x *UseCase) appClient(installID types.GitHubAppInstallID) (interfaces.GitHub, error) {
	gh, err := x.clients.GitHubApp().GitHub(installID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App client", goerr.V("install_id", installID))
	}
	return gh, nil
}
