package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/m-mizutani/gots/slice"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func historyCommand(out io.Writer) *cli.Command {
	var (
		repo   repoFlags
		number int
		limit  int
		ucConf useCaseConfig
	)

	return &cli.Command{
		Name:  "history",
		Usage: "Show recent refreshes of a pull request (requires Firestore)",
		Flags: slice.Flatten(repo.Flags(), []cli.Flag{
			numberFlag(&number),
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Maximum number of records",
				Value:       20,
				Destination: &limit,
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

			records, err := uc.ListRefreshHistory(ctx, &model.PullRequestTarget{GitHubRepo: ghRepo, Number: number}, limit)
			if err != nil {
				return err
			}

			for _, record := range records {
				_, _ = fmt.Fprintf(out, "%s ", record.Timestamp.Format(time.RFC3339))
				printRecord(out, record)
			}
			return nil
		},
	}
}
