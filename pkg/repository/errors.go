package repository

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

var (
	ErrNotFound     = goerr.New("not found")
	ErrInvalidInput = goerr.New("invalid input")
)

// ValidateRefreshRecord checks the fields every repository keys records by.
func ValidateRefreshRecord(record *model.RefreshRecord) error {
	if record == nil {
		return goerr.Wrap(ErrInvalidInput, "record is nil")
	}
	if record.ID == "" {
		return goerr.Wrap(ErrInvalidInput, "record ID is empty")
	}
	if err := record.Repo.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidInput, "invalid repository of record", goerr.V("cause", err.Error()))
	}
	if record.Number <= 0 {
		return goerr.Wrap(ErrInvalidInput, "invalid pull request number", goerr.V("number", record.Number))
	}
	return nil
}
