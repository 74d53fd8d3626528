package usecase

import (
	"time"

	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/infra"
)

type UseCase struct {
	clients       *infra.Clients
	conventions   *model.Conventions
	retry         RetryConfig
	watchInterval time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithConventions replaces the default naming rules.
func WithConventions(cv *model.Conventions) Option {
	return func(x *UseCase) {
		x.conventions = cv
	}
}

func WithRetry(cfg RetryConfig) Option {
	return func(x *UseCase) {
		x.retry = cfg
	}
}

// WithWatchInterval sets how often a watched pull request is polled.
func WithWatchInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.watchInterval = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		conventions:   model.DefaultConventions(),
		retry:         DefaultRetryConfig(),
		watchInterval: 10 * time.Second,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
