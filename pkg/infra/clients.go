package infra

import (
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
)

type Clients struct {
	githubApp         interfaces.GitHubApp
	github            interfaces.GitHub
	bqClient          interfaces.BigQuery
	refreshRepository interfaces.RefreshRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}

// GitHub is the token authenticated client, nil when no token is configured.
func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) RefreshRepository() interfaces.RefreshRepository {
	return x.refreshRepository
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithRefreshRepository(repo interfaces.RefreshRepository) Option {
	return func(x *Clients) {
		x.refreshRepository = repo
	}
}
