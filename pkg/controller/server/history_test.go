package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/controller/server"
	"github.com/nicepulls/nicepulls/pkg/domain/mock"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

func TestHistory(t *testing.T) {
	t.Run("records as JSON", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRefreshHistoryFunc: func(ctx context.Context, target *model.PullRequestTarget, limit int) ([]*model.RefreshRecord, error) {
				return []*model.RefreshRecord{
					{ID: "r2", Repo: target.GitHubRepo, Number: target.Number, Kind: model.BranchKindFeature, BodyChanged: true},
					{ID: "r1", Repo: target.GitHubRepo, Number: target.Number, Kind: model.BranchKindFeature},
				}, nil
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pulls/drivy/drivy-rails/42/history?limit=5", nil))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		var resp struct {
			Records []model.RefreshRecord `json:"records"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, len(resp.Records)).Equal(2)
		gt.V(t, resp.Records[0].ID).Equal(types.RecordID("r2"))

		calls := uc.ListRefreshHistoryCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Target.FullName()).Equal("drivy/drivy-rails")
		gt.V(t, calls[0].Target.Number).Equal(42)
		gt.V(t, calls[0].Limit).Equal(5)
	})

	t.Run("invalid number", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pulls/drivy/drivy-rails/abc/history", nil))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.ListRefreshHistoryCalls())).Equal(0)
	})

	t.Run("no history store", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRefreshHistoryFunc: func(ctx context.Context, target *model.PullRequestTarget, limit int) ([]*model.RefreshRecord, error) {
				return nil, goerr.Wrap(types.ErrInvalidOption, "refresh history is not configured")
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pulls/drivy/drivy-rails/42/history", nil))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
