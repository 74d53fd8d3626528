package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

type GitHubRepo struct {
	Owner    string `json:"owner" bigquery:"owner" firestore:"owner"`
	RepoName string `json:"repo_name" bigquery:"repo_name" firestore:"repo_name"`
}

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repo name is empty")
	}
	return nil
}

// FullName returns "owner/repo".
func (x GitHubRepo) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// URL returns the web URL of the repository.
func (x GitHubRepo) URL() string {
	return "https://github.com/" + x.FullName()
}

// PullURLPrefix is the prefix of every pull request URL of the repository.
func (x GitHubRepo) PullURLPrefix() string {
	return x.URL() + "/pull/"
}

type PullRequest struct {
	Repo      GitHubRepo
	Number    int
	Title     string
	Body      string
	HeadRef   string
	BaseRef   string
	Labels    []string
	Draft     bool
	Author    string
	HTMLURL   string
	UpdatedAt time.Time
}

func (x *PullRequest) HasLabel(name string) bool {
	return slices.Contains(x.Labels, name)
}

func (x *PullRequest) String() string {
	return fmt.Sprintf("%s#%d", x.Repo.FullName(), x.Number)
}

// PullRequestUpdate carries the fields to edit. Nil fields are left untouched.
type PullRequestUpdate struct {
	Title *string
	Body  *string
}

type NewPullRequest struct {
	Title string
	Head  string
	Base  string
	Body  string
	Draft bool
}

// Comparison is the diff between two refs, as the compare page shows it.
type Comparison struct {
	Files   []ChangedFile
	Commits []Commit
}
