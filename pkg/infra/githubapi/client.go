package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const perPage = 100

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client) error

// WithBaseURL points the client at another API root, e.g. GitHub Enterprise
// or a test server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", baseURL))
		}
		x.client.BaseURL = u
		return nil
	}
}

// New builds a client on top of an already authenticated HTTP client.
func New(httpClient *http.Client, options ...Option) (*Client, error) {
	x := &Client{client: github.NewClient(httpClient)}
	for _, opt := range options {
		if err := opt(x); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// NewWithToken builds a client sending the token as bearer credential.
func NewWithToken(ctx context.Context, token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return New(oauth2.NewClient(ctx, ts), options...)
}

// wrapAPIError tags rate limits and server side failures as retryable.
func wrapAPIError(err error, msg string, values ...goerr.Option) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse

	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return goerr.Wrap(errors.Join(types.ErrRetryable, err), msg, values...)
	case errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode >= 500:
		values = append(values, goerr.V("status", respErr.Response.StatusCode))
		return goerr.Wrap(errors.Join(types.ErrRetryable, err), msg, values...)
	default:
		return goerr.Wrap(err, msg, values...)
	}
}

func isNotFound(err error) bool {
	var respErr *github.ErrorResponse
	return errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound
}

func toPullRequest(repo model.GitHubRepo, pr *github.PullRequest) *model.PullRequest {
	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}

	return &model.PullRequest{
		Repo:      repo,
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Body:      pr.GetBody(),
		HeadRef:   pr.GetHead().GetRef(),
		BaseRef:   pr.GetBase().GetRef(),
		Labels:    labels,
		Draft:     pr.GetDraft(),
		Author:    pr.GetUser().GetLogin(),
		HTMLURL:   pr.GetHTMLURL(),
		UpdatedAt: pr.GetUpdatedAt().Time,
	}
}

func toChangedFile(f *github.CommitFile) model.ChangedFile {
	return model.ChangedFile{
		Path:         f.GetFilename(),
		LinesChanged: f.GetChanges(),
		Status:       model.FileStatus(f.GetStatus()),
	}
}

func toCommit(c *github.RepositoryCommit) model.Commit {
	return model.Commit{
		SHA:     c.GetSHA(),
		Message: c.GetCommit().GetMessage(),
	}
}

func (x *Client) GetPullRequest(ctx context.Context, repo model.GitHubRepo, number int) (*model.PullRequest, error) {
	pr, _, err := x.client.PullRequests.Get(ctx, repo.Owner, repo.RepoName, number)
	if err != nil {
		return nil, wrapAPIError(err, "failed to get pull request", goerr.V("repo", repo.FullName()), goerr.V("number", number))
	}
	return toPullRequest(repo, pr), nil
}

func (x *Client) ListOpenPullRequests(ctx context.Context, repo model.GitHubRepo) ([]*model.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var prs []*model.PullRequest
	for {
		resp, r, err := x.client.PullRequests.List(ctx, repo.Owner, repo.RepoName, opts)
		if err != nil {
			return nil, wrapAPIError(err, "failed to list pull requests", goerr.V("repo", repo.FullName()), goerr.V("page", opts.Page))
		}
		for _, pr := range resp {
			prs = append(prs, toPullRequest(repo, pr))
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	logging.From(ctx).Debug("listed open pull requests", slog.String("repo", repo.FullName()), slog.Int("count", len(prs)))
	return prs, nil
}

func (x *Client) ListPullRequestFiles(ctx context.Context, repo model.GitHubRepo, number int) ([]model.ChangedFile, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var files []model.ChangedFile
	for {
		resp, r, err := x.client.PullRequests.ListFiles(ctx, repo.Owner, repo.RepoName, number, opts)
		if err != nil {
			return nil, wrapAPIError(err, "failed to list pull request files",
				goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("page", opts.Page))
		}
		for _, f := range resp {
			files = append(files, toChangedFile(f))
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return files, nil
}

func (x *Client) ListPullRequestCommits(ctx context.Context, repo model.GitHubRepo, number int) ([]model.Commit, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var commits []model.Commit
	for {
		resp, r, err := x.client.PullRequests.ListCommits(ctx, repo.Owner, repo.RepoName, number, opts)
		if err != nil {
			return nil, wrapAPIError(err, "failed to list pull request commits",
				goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("page", opts.Page))
		}
		for _, c := range resp {
			commits = append(commits, toCommit(c))
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return commits, nil
}

func (x *Client) UpdatePullRequest(ctx context.Context, repo model.GitHubRepo, number int, update *model.PullRequestUpdate) (*model.PullRequest, error) {
	req := &github.PullRequest{
		Title: update.Title,
		Body:  update.Body,
	}

	pr, _, err := x.client.PullRequests.Edit(ctx, repo.Owner, repo.RepoName, number, req)
	if err != nil {
		return nil, wrapAPIError(err, "failed to update pull request", goerr.V("repo", repo.FullName()), goerr.V("number", number))
	}
	return toPullRequest(repo, pr), nil
}

func (x *Client) CreatePullRequest(ctx context.Context, repo model.GitHubRepo, input *model.NewPullRequest) (*model.PullRequest, error) {
	req := &github.NewPullRequest{
		Title: github.String(input.Title),
		Head:  github.String(input.Head),
		Base:  github.String(input.Base),
		Body:  github.String(input.Body),
		Draft: github.Bool(input.Draft),
	}

	pr, _, err := x.client.PullRequests.Create(ctx, repo.Owner, repo.RepoName, req)
	if err != nil {
		return nil, wrapAPIError(err, "failed to create pull request",
			goerr.V("repo", repo.FullName()), goerr.V("head", input.Head), goerr.V("base", input.Base))
	}
	return toPullRequest(repo, pr), nil
}

func (x *Client) Compare(ctx context.Context, repo model.GitHubRepo, base, head string) (*model.Comparison, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var result model.Comparison
	for {
		cmp, r, err := x.client.Repositories.CompareCommits(ctx, repo.Owner, repo.RepoName, base, head, opts)
		if err != nil {
			return nil, wrapAPIError(err, "failed to compare refs",
				goerr.V("repo", repo.FullName()), goerr.V("base", base), goerr.V("head", head))
		}
		// files are complete in the first page, later pages only add commits
		if opts.Page <= 1 {
			for _, f := range cmp.Files {
				result.Files = append(result.Files, toChangedFile(f))
			}
		}
		for _, c := range cmp.Commits {
			result.Commits = append(result.Commits, toCommit(c))
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return &result, nil
}

func (x *Client) AddLabels(ctx context.Context, repo model.GitHubRepo, number int, labels []string) error {
	if _, _, err := x.client.Issues.AddLabelsToIssue(ctx, repo.Owner, repo.RepoName, number, labels); err != nil {
		return wrapAPIError(err, "failed to add labels",
			goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("labels", labels))
	}
	return nil
}

// RemoveLabel succeeds when the label is not on the pull request.
func (x *Client) RemoveLabel(ctx context.Context, repo model.GitHubRepo, number int, label string) error {
	if _, err := x.client.Issues.RemoveLabelForIssue(ctx, repo.Owner, repo.RepoName, number, label); err != nil {
		if isNotFound(err) {
			return nil
		}
		return wrapAPIError(err, "failed to remove label",
			goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("label", label))
	}
	return nil
}

func (x *Client) AddAssignees(ctx context.Context, repo model.GitHubRepo, number int, logins []string) error {
	if _, _, err := x.client.Issues.AddAssignees(ctx, repo.Owner, repo.RepoName, number, logins); err != nil {
		return wrapAPIError(err, "failed to add assignees",
			goerr.V("repo", repo.FullName()), goerr.V("number", number), goerr.V("logins", logins))
	}
	return nil
}

func (x *Client) GetCurrentUser(ctx context.Context) (string, error) {
	user, _, err := x.client.Users.Get(ctx, "")
	if err != nil {
		return "", wrapAPIError(err, "failed to get current user")
	}
	return user.GetLogin(), nil
}
