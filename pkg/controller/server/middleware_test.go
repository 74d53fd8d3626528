package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/controller/server"
	"github.com/nicepulls/nicepulls/pkg/domain/mock"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("request gets an ID and a tagged logger", func(t *testing.T) {
		var capturedCtx context.Context
		mux := server.New(&mock.UseCaseMock{}).Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		gt.V(t, logging.From(capturedCtx) == logging.From(context.Background())).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		again, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, reqID).NotEqual("")
		gt.V(t, again).Equal(reqID)
	})

	t.Run("status codes pass through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			mux := server.New(&mock.UseCaseMock{}).Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			gt.V(t, w.Code).Equal(code)
		}
	})
}
