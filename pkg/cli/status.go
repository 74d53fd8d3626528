package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/gots/slice"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/usecase"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func numberFlag(dst *int) cli.Flag {
	return &cli.IntFlag{
		Name:        "number",
		Aliases:     []string{"n"},
		Usage:       "Pull request number",
		Required:    true,
		Destination: dst,
	}
}

func statusCommand() *cli.Command {
	var (
		repo   repoFlags
		number int
		status string
		ucConf useCaseConfig
	)

	return &cli.Command{
		Name:  "status",
		Usage: "Set the Lyriq translation status of a pull request [not_yet_started|in_progress|done]",
		Flags: slice.Flatten(repo.Flags(), []cli.Flag{
			numberFlag(&number),
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "New status",
				Required:    true,
				Destination: &status,
			},
		}, ucConf.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghRepo, err := repo.Resolve()
			if err != nil {
				return err
			}

			uc, cleanup, err := ucConf.New(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			target := &model.PullRequestTarget{GitHubRepo: ghRepo, Number: number}
			if err := uc.SetStatus(ctx, target, model.LyriqStatus(status)); err != nil {
				return err
			}

			logging.From(ctx).Info("status updated",
				slog.String("repo", ghRepo.FullName()),
				slog.Int("number", number),
				slog.String("status", status),
			)
			return nil
		},
	}
}

func watchCommand() *cli.Command {
	var (
		repo     repoFlags
		number   int
		interval time.Duration
		ucConf   useCaseConfig
	)

	return &cli.Command{
		Name:  "watch",
		Usage: "Watch a pull request and react when a Lyriq link shows up in its description",
		Flags: slice.Flatten(repo.Flags(), []cli.Flag{
			numberFlag(&number),
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "Polling interval",
				Value:       10 * time.Second,
				Sources:     cli.EnvVars("NICEPULLS_WATCH_INTERVAL"),
				Destination: &interval,
			},
		}, ucConf.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghRepo, err := repo.Resolve()
			if err != nil {
				return err
			}

			uc, cleanup, err := ucConf.New(ctx, usecase.WithWatchInterval(interval))
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := interruptible(ctx)
			defer stop()

			logging.From(ctx).Info("watching pull request",
				slog.String("repo", ghRepo.FullName()),
				slog.Int("number", number),
				slog.Duration("interval", interval),
			)

			err = uc.WatchPullRequest(ctx, &model.PullRequestTarget{GitHubRepo: ghRepo, Number: number})
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}
