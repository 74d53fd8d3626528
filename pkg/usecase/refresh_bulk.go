package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// RefreshPullRequests refreshes the given pull requests one after another. A
// failed pull request is logged and skipped; the error returned at the end
// reports how many failed.
func (x *UseCase) RefreshPullRequests(ctx context.Context, repo model.GitHubRepo, numbers []int) (*model.RefreshSummary, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	installID, err := x.bulkInstallID(ctx, repo)
	if err != nil {
		return nil, err
	}

	return x.refreshEach(ctx, repo, installID, numbers)
}

// RefreshOpenPullRequests refreshes every open pull request of the repository
// matching the author and label filters.
func (x *UseCase) RefreshOpenPullRequests(ctx context.Context, input *model.RefreshOpenPullRequestsInput) (*model.RefreshSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	installID, err := x.bulkInstallID(ctx, input.GitHubRepo)
	if err != nil {
		return nil, err
	}
	gh, err := x.githubClient(ctx, input.GitHubRepo, installID)
	if err != nil {
		return nil, err
	}

	var pulls []*model.PullRequest
	if err := withRetry(ctx, x.retry, func(ctx context.Context) error {
		var err error
		pulls, err = gh.ListOpenPullRequests(ctx, input.GitHubRepo)
		return err
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to list open pull requests", goerr.V("repo", input.FullName()))
	}

	var numbers []int
	for _, pr := range pulls {
		if input.Author != "" && pr.Author != input.Author {
			continue
		}
		if input.Label != "" && !pr.HasLabel(input.Label) {
			continue
		}
		numbers = append(numbers, pr.Number)
	}

	logging.From(ctx).Info("open pull requests selected",
		slog.String("repo", input.FullName()),
		slog.Int("open", len(pulls)),
		slog.Int("selected", len(numbers)),
	)

	return x.refreshEach(ctx, input.GitHubRepo, installID, numbers)
}

// bulkInstallID resolves the App installation once for a whole run instead
// of once per pull request. Zero means the token client is used.
func (x *UseCase) bulkInstallID(ctx context.Context, repo model.GitHubRepo) (types.GitHubAppInstallID, error) {
	app := x.clients.GitHubApp()
	if x.clients.GitHub() != nil || app == nil {
		return 0, nil
	}

	installID, err := app.GetInstallationIDForOwner(ctx, repo.Owner)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to look up GitHub App installation", goerr.V("owner", repo.Owner))
	}
	return installID, nil
}

func (x *UseCase) refreshEach(ctx context.Context, repo model.GitHubRepo, installID types.GitHubAppInstallID, numbers []int) (*model.RefreshSummary, error) {
	logger := logging.From(ctx)
	summary := &model.RefreshSummary{Total: len(numbers)}

	for i, number := range numbers {
		if err := ctx.Err(); err != nil {
			return summary, goerr.Wrap(err, "bulk refresh cancelled",
				goerr.V("repo", repo.FullName()),
				goerr.V("done", i),
				goerr.V("total", len(numbers)),
			)
		}

		logger.Info("Refreshing pull request",
			slog.Int("progress", i+1),
			slog.Int("total", len(numbers)),
			slog.String("repo", repo.FullName()),
			slog.Int("number", number),
		)

		target := &model.PullRequestTarget{
			GitHubRepo: repo,
			Number:     number,
			InstallID:  installID,
		}
		if _, err := x.RefreshDescription(ctx, target); err != nil {
			summary.Failed = append(summary.Failed, number)
			logger.Warn("Failed to refresh pull request",
				slog.String("repo", repo.FullName()),
				slog.Int("number", number),
				slog.Any("error", err),
			)
			continue
		}

		summary.Success++
	}

	logger.Info("Completed bulk refresh",
		slog.String("repo", repo.FullName()),
		slog.Int("total", summary.Total),
		slog.Int("success", summary.Success),
		slog.Int("failure", len(summary.Failed)),
	)

	if len(summary.Failed) > 0 {
		return summary, goerr.New("some pull requests failed to refresh",
			goerr.V("repo", repo.FullName()),
			goerr.V("success_count", summary.Success),
			goerr.V("failed", summary.Failed),
		)
	}

	return summary, nil
}
