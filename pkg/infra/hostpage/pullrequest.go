package hostpage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// PullRequestPage exposes a pull request on GitHub as a page. Changes are
// detected by polling its updated_at timestamp.
type PullRequestPage struct {
	gh     interfaces.GitHub
	repo   model.GitHubRepo
	number int

	interval time.Duration
}

var _ interfaces.HostPage = (*PullRequestPage)(nil)

type PullRequestPageOption func(*PullRequestPage)

func WithPollInterval(d time.Duration) PullRequestPageOption {
	return func(x *PullRequestPage) {
		x.interval = d
	}
}

func NewPullRequestPage(gh interfaces.GitHub, repo model.GitHubRepo, number int, options ...PullRequestPageOption) *PullRequestPage {
	page := &PullRequestPage{
		gh:       gh,
		repo:     repo,
		number:   number,
		interval: 10 * time.Second,
	}
	for _, opt := range options {
		opt(page)
	}
	return page
}

func (x *PullRequestPage) ReadField(ctx context.Context, field model.PageField) (string, error) {
	pr, err := x.gh.GetPullRequest(ctx, x.repo, x.number)
	if err != nil {
		return "", err
	}

	switch field {
	case model.PageFieldTitle:
		return pr.Title, nil
	case model.PageFieldBody:
		return pr.Body, nil
	case model.PageFieldHeadRef:
		return pr.HeadRef, nil
	case model.PageFieldBaseRef:
		return pr.BaseRef, nil
	case model.PageFieldUpdatedAt:
		return pr.UpdatedAt.UTC().Format(time.RFC3339), nil
	default:
		return "", goerr.Wrap(types.ErrInvalidOption, "unknown page field", goerr.V("field", field))
	}
}

func (x *PullRequestPage) ReadList(ctx context.Context, list model.PageList) ([]string, error) {
	if list != model.PageListLabels {
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown page list", goerr.V("list", list))
	}

	pr, err := x.gh.GetPullRequest(ctx, x.repo, x.number)
	if err != nil {
		return nil, err
	}
	return pr.Labels, nil
}

// WriteField edits the title or the body. Other fields are read only.
func (x *PullRequestPage) WriteField(ctx context.Context, field model.PageField, value string) error {
	var update model.PullRequestUpdate
	switch field {
	case model.PageFieldTitle:
		update.Title = &value
	case model.PageFieldBody:
		update.Body = &value
	default:
		return goerr.Wrap(types.ErrInvalidOption, "page field is read only", goerr.V("field", field))
	}

	if _, err := x.gh.UpdatePullRequest(ctx, x.repo, x.number, &update); err != nil {
		return err
	}
	return nil
}

// OnChange polls the pull request and calls fn once per observed update. The
// state at the first poll is the baseline and does not trigger fn.
func (x *PullRequestPage) OnChange(ctx context.Context, fn func(ctx context.Context) error) error {
	ticker := time.NewTicker(x.interval)
	defer ticker.Stop()

	var last time.Time
	for {
		pr, err := x.gh.GetPullRequest(ctx, x.repo, x.number)
		switch {
		case err == nil:
			if !last.IsZero() && !pr.UpdatedAt.Equal(last) {
				if err := fn(ctx); err != nil {
					return err
				}
			}
			last = pr.UpdatedAt

		case errors.Is(err, types.ErrRetryable):
			logging.From(ctx).Warn("failed to poll pull request, will retry",
				slog.String("pr", x.repo.FullName()), slog.Int("number", x.number), slog.Any("error", err))

		default:
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
