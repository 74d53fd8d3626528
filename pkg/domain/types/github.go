package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
	GitHubToken         string
	RecordID            string
	RequestID           string
)

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
