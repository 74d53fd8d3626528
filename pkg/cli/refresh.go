package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func printRecord(w io.Writer, record *model.RefreshRecord) {
	changed := "unchanged"
	if record.BodyChanged {
		changed = "updated"
	}
	_, _ = fmt.Fprintf(w, "#%d %s (%s) %s", record.Number, record.Branch, record.Kind, changed)
	if record.Status != "" {
		_, _ = fmt.Fprintf(w, ", status %s", record.Status)
	}
	if len(record.LabelsAdded) > 0 {
		_, _ = fmt.Fprintf(w, ", +%s", strings.Join(record.LabelsAdded, " +"))
	}
	if len(record.LabelsRemoved) > 0 {
		_, _ = fmt.Fprintf(w, ", -%s", strings.Join(record.LabelsRemoved, " -"))
	}
	_, _ = fmt.Fprintln(w)
}

func printSummary(w io.Writer, summary *model.RefreshSummary) {
	if summary == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "refreshed %d/%d pull requests\n", summary.Success, summary.Total)
	for _, n := range summary.Failed {
		_, _ = fmt.Fprintf(w, "failed: #%d\n", n)
	}
}

// interruptible stops bulk runs between items on SIGINT or SIGTERM.
func interruptible(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func refreshCommand(out io.Writer) *cli.Command {
	var (
		repo   repoFlags
		ucConf useCaseConfig
	)

	return &cli.Command{
		Name:      "refresh",
		Aliases:   []string{"r"},
		Usage:     "Refresh the description of one or more pull requests",
		ArgsUsage: "<number> [<number>...]",
		Flags:     slice.Flatten(repo.Flags(), ucConf.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() == 0 {
				return goerr.Wrap(types.ErrInvalidOption, "at least one pull request number is required")
			}
			numbers, err := parsePullNumbers(c.Args().Slice())
			if err != nil {
				return err
			}

			ghRepo, err := repo.Resolve()
			if err != nil {
				return err
			}

			uc, cleanup, err := ucConf.New(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(numbers) == 1 {
				record, err := uc.RefreshDescription(ctx, &model.PullRequestTarget{
					GitHubRepo: ghRepo,
					Number:     numbers[0],
				})
				if err != nil {
					return err
				}
				printRecord(out, record)
				return nil
			}

			ctx, stop := interruptible(ctx)
			defer stop()

			summary, err := uc.RefreshPullRequests(ctx, ghRepo, numbers)
			printSummary(out, summary)
			return err
		},
	}
}

func refreshAllCommand(out io.Writer) *cli.Command {
	var (
		repo   repoFlags
		author string
		label  string
		ucConf useCaseConfig
	)

	return &cli.Command{
		Name:  "refresh-all",
		Usage: "Refresh the description of every open pull request",
		Flags: slice.Flatten(repo.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "author",
				Usage:       "Only pull requests opened by this login",
				Sources:     cli.EnvVars("NICEPULLS_AUTHOR"),
				Destination: &author,
			},
			&cli.StringFlag{
				Name:        "label",
				Usage:       "Only pull requests carrying this label",
				Sources:     cli.EnvVars("NICEPULLS_LABEL"),
				Destination: &label,
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

			ctx, stop := interruptible(ctx)
			defer stop()

			summary, err := uc.RefreshOpenPullRequests(ctx, &model.RefreshOpenPullRequestsInput{
				GitHubRepo: ghRepo,
				Author:     author,
				Label:      label,
			})
			printSummary(out, summary)
			return err
		},
	}
}
