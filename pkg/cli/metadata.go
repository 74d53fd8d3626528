package cli

import (
	"github.com/gitsight/go-vcsurl"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
)

// GitMetadata is what can be read from a local clone.
type GitMetadata struct {
	Owner    string
	RepoName string
	Branch   string
}

// DetectGitMetadata reads owner and repository from the origin remote and the
// branch HEAD points at. Branch is empty on a detached HEAD.
func DetectGitMetadata(dir string) (*GitMetadata, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	var meta GitMetadata

	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read HEAD")
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		meta.Branch = head.Target().Short()
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return nil, goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, repoName, ok := ParseGitHubRemote(url)
	if !ok {
		return nil, goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	meta.Owner = owner
	meta.RepoName = repoName

	return &meta, nil
}

// ParseGitHubRemote accepts the remote URL forms git understands, e.g.
// git@github.com:owner/repo.git or https://github.com/owner/repo.
func ParseGitHubRemote(url string) (owner, repoName string, ok bool) {
	info, err := vcsurl.Parse(url)
	if err != nil || info.Host != vcsurl.GitHub {
		return "", "", false
	}
	if info.Username == "" || info.Name == "" {
		return "", "", false
	}
	return info.Username, info.Name, true
}
