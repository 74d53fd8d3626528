package cli

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/nicepulls/nicepulls/pkg/cli/config"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/infra"
	"github.com/nicepulls/nicepulls/pkg/repository/memory"
	"github.com/nicepulls/nicepulls/pkg/usecase"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
	"github.com/nicepulls/nicepulls/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// repoFlags fall back to the origin remote of the working directory.
type repoFlags struct {
	owner    string
	repoName string
}

func (x *repoFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("NICEPULLS_OWNER"),
			Destination: &x.owner,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("NICEPULLS_REPO"),
			Destination: &x.repoName,
		},
	}
}

func (x *repoFlags) Resolve() (model.GitHubRepo, error) {
	repo := model.GitHubRepo{Owner: x.owner, RepoName: x.repoName}
	if repo.Owner == "" || repo.RepoName == "" {
		meta, err := DetectGitMetadata(".")
		if err != nil {
			return repo, goerr.Wrap(err, "owner and repo are not given and can not be detected")
		}
		if repo.Owner == "" {
			repo.Owner = meta.Owner
		}
		if repo.RepoName == "" {
			repo.RepoName = meta.RepoName
		}
	}

	if err := repo.Validate(); err != nil {
		return repo, err
	}
	return repo, nil
}

// useCaseConfig gathers every client flag a command may need.
type useCaseConfig struct {
	github      config.GitHub
	githubApp   config.GitHubApp
	bigQuery    config.BigQuery
	firestore   config.Firestore
	conventions config.Conventions

	// memoryHistory keeps refresh history in process when Firestore is off
	memoryHistory bool
}

func (x *useCaseConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.githubApp.Flags(),
		x.bigQuery.Flags(),
		x.firestore.Flags(),
		x.conventions.Flags(),
	)
}

func (x *useCaseConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", &x.github),
		slog.Any("GitHubApp", x.githubApp),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Firestore", &x.firestore),
		slog.Any("Conventions", &x.conventions),
	)
}

// New builds the use case. The returned function releases the clients.
func (x *useCaseConfig) New(ctx context.Context, options ...usecase.Option) (*usecase.UseCase, func(), error) {
	logging.From(ctx).Debug("building use case", slog.Any("config", x))

	var infraOptions []infra.Option
	cleanup := func() {}

	ghClient, err := x.github.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	if ghClient != nil {
		infraOptions = append(infraOptions, infra.WithGitHub(ghClient))
	}

	ghApp, err := x.githubApp.New(x.github.APIOptions()...)
	if err != nil {
		return nil, nil, err
	}
	if ghApp != nil {
		infraOptions = append(infraOptions, infra.WithGitHubApp(ghApp))
	}

	if ghClient == nil && ghApp == nil {
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token or GitHub App is required")
	}

	bqClient, err := x.bigQuery.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
		cleanup = func() { safe.Close(bqClient) }
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if repo == nil && x.memoryHistory {
		repo = memory.New()
	}
	if repo != nil {
		infraOptions = append(infraOptions, infra.WithRefreshRepository(repo))
	}

	cv, err := x.conventions.New()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	options = append([]usecase.Option{usecase.WithConventions(cv)}, options...)
	return usecase.New(infra.New(infraOptions...), options...), cleanup, nil
}

func parsePullNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid pull request number", goerr.V("arg", arg))
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
