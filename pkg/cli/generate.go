package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type compareFlags struct {
	repoFlags
	base string
	head string
}

func (x *compareFlags) Flags() []cli.Flag {
	return slice.Flatten(x.repoFlags.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "base",
			Usage:       "Base branch",
			Value:       "main",
			Sources:     cli.EnvVars("NICEPULLS_BASE"),
			Destination: &x.base,
		},
		&cli.StringFlag{
			Name:        "head",
			Usage:       "Head branch (current branch if not specified)",
			Sources:     cli.EnvVars("NICEPULLS_HEAD"),
			Destination: &x.head,
		},
	})
}

func (x *compareFlags) Input() (*model.GenerateDescriptionInput, error) {
	repo, err := x.Resolve()
	if err != nil {
		return nil, err
	}

	head := x.head
	if head == "" {
		meta, err := DetectGitMetadata(".")
		if err != nil {
			return nil, goerr.Wrap(err, "head is not given and can not be detected")
		}
		if meta.Branch == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "head is not given and HEAD is detached")
		}
		head = meta.Branch
	}

	return &model.GenerateDescriptionInput{
		GitHubRepo: repo,
		Base:       x.base,
		Head:       head,
	}, nil
}

func printDescription(w io.Writer, desc *model.GeneratedDescription) {
	_, _ = fmt.Fprintf(w, "Title: %s\n", desc.Title)
	if len(desc.Labels) > 0 {
		_, _ = fmt.Fprintf(w, "Labels: %s\n", strings.Join(desc.Labels, ", "))
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", desc.Body)
}

func generateCommand(out io.Writer) *cli.Command {
	var (
		cmp    compareFlags
		ucConf useCaseConfig
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Print the description a new pull request from head to base would get",
		Flags:   slice.Flatten(cmp.Flags(), ucConf.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := cmp.Input()
			if err != nil {
				return err
			}

			uc, cleanup, err := ucConf.New(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			desc, err := uc.GenerateDescription(ctx, input)
			if err != nil {
				return err
			}

			logging.From(ctx).Debug("generated description",
				slog.String("repo", input.FullName()),
				slog.String("head", input.Head),
				slog.Any("kind", desc.Kind),
			)
			printDescription(out, desc)
			return nil
		},
	}
}

func createCommand(out io.Writer) *cli.Command {
	var (
		cmp    compareFlags
		ucConf useCaseConfig
	)

	return &cli.Command{
		Name:    "create",
		Aliases: []string{"c"},
		Usage:   "Open a draft pull request with a generated description",
		Flags:   slice.Flatten(cmp.Flags(), ucConf.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := cmp.Input()
			if err != nil {
				return err
			}

			uc, cleanup, err := ucConf.New(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pr, err := uc.CreatePullRequest(ctx, input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, pr.HTMLURL)
			return nil
		},
	}
}
