package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/nicepulls/nicepulls/pkg/cli/config"
	"github.com/nicepulls/nicepulls/pkg/controller/server"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		ucConf useCaseConfig
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("NICEPULLS_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode, refreshing pull requests on GitHub App webhooks",
		Flags: slice.Flatten(
			serveFlags,
			ucConf.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("UseCase", &ucConf),
				slog.Any("Sentry", &sentry),
			)

			if !ucConf.githubApp.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "GitHub App ID is required in server mode")
			}
			if ucConf.githubApp.Secret() == "" {
				return goerr.Wrap(types.ErrInvalidOption, "GitHub App webhook secret is required in server mode")
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ucConf.memoryHistory = true
			uc, cleanup, err := ucConf.New(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := server.New(uc, server.WithGitHubSecret(ucConf.githubApp.Secret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
