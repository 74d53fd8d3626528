package cli

import (
	"context"
	"io"
	"os"

	"github.com/nicepulls/nicepulls/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out io.Writer
}

type Option func(*CLI)

// WithOutput sets where command results are printed. Logs are configured
// separately by --log-output.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{out: os.Stdout}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	return x.RunContext(context.Background(), argv)
}

func (x *CLI) RunContext(ctx context.Context, argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:   "nicepulls",
		Usage:  "Keep pull request descriptions of a Rails repository up to date",
		Writer: x.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("NICEPULLS_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("NICEPULLS_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("NICEPULLS_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			generateCommand(x.out),
			createCommand(x.out),
			refreshCommand(x.out),
			refreshAllCommand(x.out),
			statusCommand(),
			watchCommand(),
			historyCommand(x.out),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
