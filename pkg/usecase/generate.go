package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// GenerateDescription builds the description a new pull request from head
// into base would start with.
func (x *UseCase) GenerateDescription(ctx context.Context, input *model.GenerateDescriptionInput) (*model.GeneratedDescription, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid input")
	}

	gh, err := x.githubClient(ctx, input.GitHubRepo, 0)
	if err != nil {
		return nil, err
	}

	var cmp *model.Comparison
	if err := withRetry(ctx, x.retry, func(ctx context.Context) error {
		var err error
		cmp, err = gh.Compare(ctx, input.GitHubRepo, input.Base, input.Head)
		return err
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to compare branches",
			goerr.V("repo", input.FullName()),
			goerr.V("base", input.Base),
			goerr.V("head", input.Head),
		)
	}

	return x.describe(input.Head, cmp), nil
}

func (x *UseCase) describe(head string, cmp *model.Comparison) *model.GeneratedDescription {
	cv := x.conventions
	kind := cv.ClassifyBranch(head)

	desc := &model.GeneratedDescription{
		Kind:  kind,
		Title: head,
	}
	if len(cmp.Commits) > 0 {
		desc.Title = cmp.Commits[0].Title()
	}

	switch kind {
	case model.BranchKindTranslation:
		completion := prdesc.RenderLocaleCompletion(cv.LocaleCompletion(cmp.Files))
		desc.Body = prdesc.BuildTranslationDescription(completion)
		desc.Title = cv.TranslationTitlePrefix
		if len(cmp.Commits) > 0 {
			desc.Title += cmp.Commits[0].Title()
		}
		desc.Labels = []string{cv.Labels.Lyriq}

	case model.BranchKindFix:
		desc.Body = prdesc.BuildFixDescription(
			cv.SpecPercentage(cmp.Files),
			model.JoinCommitTitles(cmp.Commits),
			len(cmp.Commits),
			cv.HasSourceLocale(cmp.Files),
		)

	default:
		desc.Body = prdesc.BuildFeatureDescription(
			cv.SpecPercentage(cmp.Files),
			model.JoinCommitTitles(cmp.Commits),
			len(cmp.Commits),
			cv.HasSourceLocale(cmp.Files),
		)
	}

	return desc
}

// CreatePullRequest opens a draft pull request with the generated
// description, assigns the acting user and adds the labels of its kind.
func (x *UseCase) CreatePullRequest(ctx context.Context, input *model.GenerateDescriptionInput) (*model.PullRequest, error) {
	desc, err := x.GenerateDescription(ctx, input)
	if err != nil {
		return nil, err
	}

	gh, err := x.githubClient(ctx, input.GitHubRepo, 0)
	if err != nil {
		return nil, err
	}

	pr, err := gh.CreatePullRequest(ctx, input.GitHubRepo, &model.NewPullRequest{
		Title: desc.Title,
		Head:  input.Head,
		Base:  input.Base,
		Body:  desc.Body,
		Draft: true,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pull request",
			goerr.V("repo", input.FullName()),
			goerr.V("head", input.Head),
		)
	}

	logger := logging.From(ctx).With(slog.String("pull_request", pr.String()))
	logger.Info("pull request created", slog.String("kind", string(desc.Kind)), slog.String("url", pr.HTMLURL))

	// App installations have no user to assign.
	if login, err := gh.GetCurrentUser(ctx); err != nil {
		logger.Warn("skip assignment, current user is unknown", slog.Any("error", err))
	} else if err := gh.AddAssignees(ctx, input.GitHubRepo, pr.Number, []string{login}); err != nil {
		return nil, goerr.Wrap(err, "failed to assign pull request", goerr.V("login", login))
	}

	if len(desc.Labels) > 0 {
		if err := gh.AddLabels(ctx, input.GitHubRepo, pr.Number, desc.Labels); err != nil {
			return nil, goerr.Wrap(err, "failed to label pull request", goerr.V("labels", desc.Labels))
		}
		pr.Labels = append(pr.Labels, desc.Labels...)
	}

	return pr, nil
}
