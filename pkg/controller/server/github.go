package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

type jobKind string

const (
	jobRefresh    jobKind = "refresh"
	jobBodyEdited jobKind = "body_edited"
)

// webhookJob is the work a pull request event asks for.
type webhookJob struct {
	Kind   jobKind
	Target *model.PullRequestTarget
}

func (x *webhookJob) key() string {
	return fmt.Sprintf("%s#%d", x.Target.FullName(), x.Target.Number)
}

// parseGitHubAppEvent validates the signature and turns the event into a job.
// A nil job means the event needs no work.
func parseGitHubAppEvent(r *http.Request, key types.GitHubAppSecret) (*webhookJob, error) {
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(r.Context()).Info("Received GitHub App event",
		slog.String("type", github.WebHookType(r)),
		slog.String("delivery", github.DeliveryID(r)),
	)

	return githubEventToJob(event), nil
}

func githubEventToJob(event any) *webhookJob {
	switch ev := event.(type) {
	case *github.PullRequestEvent:
		target := &model.PullRequestTarget{
			GitHubRepo: model.GitHubRepo{
				Owner:    ev.GetRepo().GetOwner().GetLogin(),
				RepoName: ev.GetRepo().GetName(),
			},
			Number:    ev.GetPullRequest().GetNumber(),
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		}

		switch ev.GetAction() {
		case "opened", "reopened", "synchronize":
			return &webhookJob{Kind: jobRefresh, Target: target}

		case "edited":
			if ev.GetChanges().GetBody() == nil {
				logging.Default().Debug("ignore PR edit without body change", slog.Int("number", target.Number))
				return nil
			}
			return &webhookJob{Kind: jobBodyEdited, Target: target}

		default:
			logging.Default().Debug("ignore PR event", slog.String("action", ev.GetAction()))
			return nil
		}

	case *github.InstallationEvent, *github.InstallationRepositoriesEvent, *github.PingEvent:
		return nil // ignore

	default:
		logging.Default().Warn("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return nil
	}
}

func runWebhookJob(ctx context.Context, uc interfaces.UseCase, job *webhookJob) error {
	logger := logging.From(ctx).With(
		slog.String("job", string(job.Kind)),
		slog.String("repo", job.Target.FullName()),
		slog.Int("number", job.Target.Number),
	)
	ctx = logging.With(ctx, logger)

	switch job.Kind {
	case jobRefresh:
		if _, err := uc.RefreshDescription(ctx, job.Target); err != nil {
			return err
		}
	case jobBodyEdited:
		if err := uc.HandlePullRequestEdited(ctx, job.Target); err != nil {
			return err
		}
	default:
		return goerr.New("unknown webhook job", goerr.V("kind", job.Kind))
	}

	logger.Info("Webhook job completed")
	return nil
}
