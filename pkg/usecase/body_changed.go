package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra/hostpage"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// HandleBodyChanged reacts to a Lyriq pull request link showing up in the
// body: the first time per session it adds the translation label and marks
// the status in progress. The updated session is returned.
func (x *UseCase) HandleBodyChanged(ctx context.Context, page interfaces.HostPage, target *model.PullRequestTarget, session model.Session) (model.Session, error) {
	if session.TranslationLabelAdded {
		return session, nil
	}

	body, err := page.ReadField(ctx, model.PageFieldBody)
	if err != nil {
		return session, goerr.Wrap(err, "failed to read body")
	}
	if !prdesc.HasLyriqPullLink(body, target.GitHubRepo) {
		return session, nil
	}

	gh, err := x.githubClient(ctx, target.GitHubRepo, target.InstallID)
	if err != nil {
		return session, err
	}

	label := x.conventions.Labels.HasTranslations
	if err := gh.AddLabels(ctx, target.GitHubRepo, target.Number, []string{label}); err != nil {
		return session, goerr.Wrap(err, "failed to add label", goerr.V("label", label))
	}
	session.TranslationLabelAdded = true

	updated := prdesc.SetLyriqStatus(body, model.LyriqStatusInProgress)
	if updated != body {
		if err := page.WriteField(ctx, model.PageFieldBody, updated); err != nil {
			return session, goerr.Wrap(err, "failed to write body")
		}
	}

	logging.From(ctx).Info("Lyriq link detected",
		slog.String("repo", target.FullName()),
		slog.Int("number", target.Number),
		slog.String("label", label),
	)
	return session, nil
}

// HandlePullRequestEdited runs the body-change handling once against the
// current state of a pull request. The session starts from its labels.
func (x *UseCase) HandlePullRequestEdited(ctx context.Context, target *model.PullRequestTarget) error {
	if err := target.Validate(); err != nil {
		return goerr.Wrap(err, "invalid target")
	}
	ctx = logging.WithPullRequest(ctx, target.FullName(), target.Number)

	gh, err := x.githubClient(ctx, target.GitHubRepo, target.InstallID)
	if err != nil {
		return err
	}

	pr, err := gh.GetPullRequest(ctx, target.GitHubRepo, target.Number)
	if err != nil {
		return goerr.Wrap(err, "failed to get pull request", goerr.V("number", target.Number))
	}

	page := hostpage.NewPullRequestPage(gh, target.GitHubRepo, target.Number)
	_, err = x.HandleBodyChanged(ctx, page, target, model.NewSession(pr, x.conventions))
	return err
}

// WatchPullRequest polls a pull request and runs the body-change handling on
// every edit until ctx is done. Retryable API failures do not end the watch.
func (x *UseCase) WatchPullRequest(ctx context.Context, target *model.PullRequestTarget) error {
	if err := target.Validate(); err != nil {
		return goerr.Wrap(err, "invalid target")
	}
	ctx = logging.WithPullRequest(ctx, target.FullName(), target.Number)

	gh, err := x.githubClient(ctx, target.GitHubRepo, target.InstallID)
	if err != nil {
		return err
	}

	pr, err := gh.GetPullRequest(ctx, target.GitHubRepo, target.Number)
	if err != nil {
		return goerr.Wrap(err, "failed to get pull request", goerr.V("number", target.Number))
	}

	page := hostpage.NewPullRequestPage(gh, target.GitHubRepo, target.Number,
		hostpage.WithPollInterval(x.watchInterval),
	)
	return x.watchPage(ctx, page, target, model.NewSession(pr, x.conventions))
}

func (x *UseCase) watchPage(ctx context.Context, page interfaces.HostPage, target *model.PullRequestTarget, session model.Session) error {
	logger := logging.From(ctx)
	logger.Info("Watching pull request",
		slog.String("repo", target.FullName()),
		slog.Int("number", target.Number),
		slog.Bool("label_added", session.TranslationLabelAdded),
	)

	return page.OnChange(ctx, func(ctx context.Context) error {
		next, err := x.HandleBodyChanged(ctx, page, target, session)
		if err != nil {
			if errors.Is(err, types.ErrRetryable) {
				logger.Warn("body change handling failed, waiting for next change", slog.Any("error", err))
				return nil
			}
			return err
		}
		session = next
		return nil
	})
}
