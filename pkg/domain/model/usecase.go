package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

// PullRequestTarget points at one pull request. InstallID is set when the
// request comes through the GitHub App; zero means the token client.
type PullRequestTarget struct {
	GitHubRepo
	Number    int
	InstallID types.GitHubAppInstallID
}

func (x *PullRequestTarget) Validate() error {
	if err := x.GitHubRepo.Validate(); err != nil {
		return err
	}
	if x.Number <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "invalid pull request number", goerr.V("number", x.Number))
	}
	return nil
}

type GenerateDescriptionInput struct {
	GitHubRepo
	Base string
	Head string
}

func (x *GenerateDescriptionInput) Validate() error {
	if err := x.GitHubRepo.Validate(); err != nil {
		return err
	}
	if x.Base == "" || x.Head == "" {
		return goerr.Wrap(types.ErrInvalidOption, "base and head are required",
			goerr.V("base", x.Base), goerr.V("head", x.Head))
	}
	return nil
}

// GeneratedDescription is what the compare page would prefill.
type GeneratedDescription struct {
	Kind   BranchKind
	Title  string
	Body   string
	Labels []string
}

type RefreshOpenPullRequestsInput struct {
	GitHubRepo
	Author string
	Label  string
}
