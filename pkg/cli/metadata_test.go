package cli_test

import (
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/cli"
)

func TestParseGitHubRemote(t *testing.T) {
	testCases := []struct {
		url   string
		owner string
		repo  string
		ok    bool
	}{
		{url: "git@github.com:drivy/drivy-rails.git", owner: "drivy", repo: "drivy-rails", ok: true},
		{url: "https://github.com/drivy/drivy-rails.git", owner: "drivy", repo: "drivy-rails", ok: true},
		{url: "https://github.com/drivy/drivy-rails", owner: "drivy", repo: "drivy-rails", ok: true},
		{url: "ssh://git@github.com/drivy/drivy-rails.git", owner: "drivy", repo: "drivy-rails", ok: true},
		{url: "https://gitlab.com/drivy/drivy-rails.git", ok: false},
		{url: "not a url", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			owner, repo, ok := cli.ParseGitHubRemote(tc.url)
			gt.V(t, ok).Equal(tc.ok)
			gt.V(t, owner).Equal(tc.owner)
			gt.V(t, repo).Equal(tc.repo)
		})
	}
}

func TestDetectGitMetadata(t *testing.T) {
	t.Run("origin and branch", func(t *testing.T) {
		dir := t.TempDir()
		repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
		gt.R1(repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:drivy/drivy-rails.git"},
		})).NoError(t)
		gt.NoError(t, repo.Storer.SetReference(plumbing.NewSymbolicReference(
			plumbing.HEAD, plumbing.NewBranchReferenceName("translations/new-car"),
		)))

		meta := gt.R1(cli.DetectGitMetadata(dir)).NoError(t)
		gt.V(t, meta.Owner).Equal("drivy")
		gt.V(t, meta.RepoName).Equal("drivy-rails")
		gt.V(t, meta.Branch).Equal("translations/new-car")
	})

	t.Run("no origin", func(t *testing.T) {
		dir := t.TempDir()
		gt.R1(git.PlainInit(dir, false)).NoError(t)

		_, err := cli.DetectGitMetadata(dir)
		gt.Error(t, err)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := cli.DetectGitMetadata(t.TempDir())
		gt.Error(t, err)
	})
}
