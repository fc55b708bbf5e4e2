package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/wasimadildev/card-to-text-backend/internal/service"
	"github.com/wasimadildev/card-to-text-backend/internal/utils"
)

// SubmissionHTTP wires the submission lifecycle and listing endpoints.
type SubmissionHTTP struct {
	svc *service.SubmissionService
	log zerolog.Logger
}

func NewSubmissionHTTP(svc *service.SubmissionService, log zerolog.Logger) *SubmissionHTTP {
	return &SubmissionHTTP{svc: svc, log: log}
}

// POST /api/submissions
func (h *SubmissionHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := identityFromCtx(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in service.SubmissionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		sub, err := h.svc.Create(r.Context(), ident, in)
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Submission created successfully",
			"data":    map[string]any{"submission": sub},
		})
	}
}

// GET /api/submissions?page=&limit=&recent=
func (h *SubmissionHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := identityFromCtx(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		qv := r.URL.Query()
		res, err := h.svc.List(r.Context(), ident, service.ListCriteria{
			Page:   utils.QueryInt(qv, "page", 1),
			Limit:  utils.QueryInt(qv, "limit", 10),
			Recent: qv.Get("recent") == "true",
		})
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "data": res})
	}
}

// GET /api/submissions/{id}
func (h *SubmissionHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := identityFromCtx(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		id := chi.URLParam(r, "id")
		sub, err := h.svc.Get(r.Context(), ident, id)
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"submission": sub},
		})
	}
}

// PUT /api/submissions/{id}
func (h *SubmissionHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := identityFromCtx(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		id := chi.URLParam(r, "id")
		var in service.SubmissionUpdate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		sub, err := h.svc.Update(r.Context(), ident, id, in)
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Submission updated successfully",
			"data":    map[string]any{"submission": sub},
		})
	}
}

// DELETE /api/submissions/{id}
func (h *SubmissionHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := identityFromCtx(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		id := chi.URLParam(r, "id")
		if err := h.svc.Delete(r.Context(), ident, id); err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Submission deleted successfully",
		})
	}
}
