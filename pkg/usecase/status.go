package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// SetStatus rewrites the Lyriq status line of a pull request. A description
// without the line is left alone.
func (x *UseCase) SetStatus(ctx context.Context, target *model.PullRequestTarget, status model.LyriqStatus) error {
	if err := target.Validate(); err != nil {
		return goerr.Wrap(err, "invalid target")
	}
	if !status.Valid() {
		return goerr.Wrap(types.ErrInvalidOption, "unknown Lyriq status", goerr.V("status", status))
	}

	gh, err := x.githubClient(ctx, target.GitHubRepo, target.InstallID)
	if err != nil {
		return err
	}

	return withRetry(ctx, x.retry, func(ctx context.Context) error {
		pr, err := gh.GetPullRequest(ctx, target.GitHubRepo, target.Number)
		if err != nil {
			return goerr.Wrap(err, "failed to get pull request", goerr.V("number", target.Number))
		}

		body := prdesc.SetLyriqStatus(pr.Body, status)
		if body == pr.Body {
			logging.From(ctx).Info("Lyriq status unchanged", slog.String("pull_request", pr.String()))
			return nil
		}

		if _, err := gh.UpdatePullRequest(ctx, target.GitHubRepo, target.Number, &model.PullRequestUpdate{Body: &body}); err != nil {
			return goerr.Wrap(err, "failed to update pull request body", goerr.V("number", target.Number))
		}
		logging.From(ctx).Info("Lyriq status updated",
			slog.String("pull_request", pr.String()),
			slog.String("status", string(status)),
		)
		return nil
	})
}
