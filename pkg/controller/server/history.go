package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/errutil"
)

type historyResponse struct {
	Records []*model.RefreshRecord `json:"records"`
}

func historyHandler(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil {
			safeWrite(w, http.StatusBadRequest, []byte("invalid pull request number"))
			return
		}

		var limit int
		if v := r.URL.Query().Get("limit"); v != "" {
			if limit, err = strconv.Atoi(v); err != nil {
				safeWrite(w, http.StatusBadRequest, []byte("invalid limit"))
				return
			}
		}

		target := &model.PullRequestTarget{
			GitHubRepo: model.GitHubRepo{
				Owner:    chi.URLParam(r, "owner"),
				RepoName: chi.URLParam(r, "repo"),
			},
			Number: number,
		}

		records, err := uc.ListRefreshHistory(r.Context(), target, limit)
		if err != nil {
			if errors.Is(err, types.ErrInvalidOption) {
				safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
				return
			}
			errutil.HandleError(r.Context(), "fail to list refresh history", err)
			safeWrite(w, http.StatusInternalServerError, []byte("internal error"))
			return
		}

		if records == nil {
			records = []*model.RefreshRecord{}
		}
		body, err := json.Marshal(historyResponse{Records: records})
		if err != nil {
			errutil.HandleError(r.Context(), "fail to marshal refresh history", err)
			safeWrite(w, http.StatusInternalServerError, []byte("internal error"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusOK, body)
	}
}
