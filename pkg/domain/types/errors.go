package types

import "errors"

var (
	ErrInvalidOption     = errors.New("invalid option")
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidGitHubData = errors.New("invalid GitHub data")

	// ErrRetryable marks GitHub API failures worth another attempt (rate limit, 5xx).
	ErrRetryable = errors.New("retryable GitHub API error")
)
