package server

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/utils/errutil"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// DetachContext returns a background context carrying the logger, request ID
// and time function of ctx. Request contexts are cancelled once the response
// is written, so work outliving the request must run on this one.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}

// runInBackground runs fn on a detached context in its own goroutine. Errors
// and panics are reported, never propagated.
func runInBackground(ctx context.Context, msg string, fn func(ctx context.Context) error) <-chan struct{} {
	bgCtx := DetachContext(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				errutil.HandleError(bgCtx, msg, goerr.New("panic in background job", goerr.V("recover", fmt.Sprint(r))))
			}
		}()

		if err := fn(bgCtx); err != nil {
			errutil.HandleError(bgCtx, msg, err)
		}
	}()

	return done
}
