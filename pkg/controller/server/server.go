package server

import (
	"context"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/errutil"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret  types.GitHubAppSecret
	onJobDone func()
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithJobDoneHook is called after each background webhook job.
func WithJobDoneHook(hook func()) Option {
	return func(cfg *config) {
		cfg.onJobDone = hook
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	locks := newPullLocks()

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/pulls/{owner}/{repo}/{number}/history", historyHandler(uc))
	r.Route("/webhook", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
				job, err := parseGitHubAppEvent(r, cfg.ghSecret)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to validate GitHub App event", err)
					safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
					return
				}

				if job == nil {
					safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"nothing to do"}`))
					return
				}

				done := runInBackground(r.Context(), "fail to handle GitHub App event", func(ctx context.Context) error {
					unlock := locks.lock(job.key())
					defer unlock()
					return runWebhookJob(ctx, uc, job)
				})
				if cfg.onJobDone != nil {
					go func() {
						<-done
						cfg.onJobDone()
					}()
				}

				safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","job":"`+string(job.Kind)+`"}`))
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
