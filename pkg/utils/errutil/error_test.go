package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", errors.New("test error"))
	})

	t.Run("goerr values", func(t *testing.T) {
		err := goerr.New("refresh failed", goerr.V("number", 42))
		errutil.HandleError(context.Background(), "test message", err)
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}
