package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/wasimadildev/card-to-text-backend/internal/service"
	"github.com/wasimadildev/card-to-text-backend/internal/utils"
)

// AdminHTTP wires administrator-only views and overrides. Routes are
// behind RequireRoles("admin") in the router.
type AdminHTTP struct {
	svc *service.AdminService
	log zerolog.Logger
}

func NewAdminHTTP(svc *service.AdminService, log zerolog.Logger) *AdminHTTP {
	return &AdminHTTP{svc: svc, log: log}
}

// GET /api/admin/users?page=&limit=
func (h *AdminHTTP) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		users, pg, err := h.svc.ListUsers(r.Context(),
			utils.QueryInt(qv, "page", 1), utils.QueryInt(qv, "limit", 10))
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"users": users, "pagination": pg},
		})
	}
}

// GET /api/admin/users/{userId}
func (h *AdminHTTP) UserDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := h.svc.UserDetail(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "data": detail})
	}
}

// PATCH /api/admin/users/{userId}/toggle-status
func (h *AdminHTTP) ToggleUserStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := h.svc.ToggleUserActive(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		msg := "User deactivated successfully"
		if u.IsActive {
			msg = "User activated successfully"
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": msg,
			"data":    map[string]any{"user": u},
		})
	}
}

// GET /api/admin/submissions?page=&limit=&userId=&status=&companyName=
func (h *AdminHTTP) ListSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		items, pg, err := h.svc.ListSubmissions(r.Context(), service.AdminListCriteria{
			Page:        utils.QueryInt(qv, "page", 1),
			Limit:       utils.QueryInt(qv, "limit", 10),
			UserID:      strings.TrimSpace(qv.Get("userId")),
			Status:      strings.TrimSpace(qv.Get("status")),
			CompanyName: strings.TrimSpace(qv.Get("companyName")),
		})
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"submissions": items, "pagination": pg},
		})
	}
}

// PATCH /api/admin/submissions/{id}/status
func (h *AdminHTTP) UpdateStatus() http.HandlerFunc {
	type inDTO struct {
		Status     string `json:"status"`
		AdminNotes string `json:"adminNotes"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := identityFromCtx(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		sub, err := h.svc.UpdateStatus(r.Context(), ident, chi.URLParam(r, "id"), in.Status, in.AdminNotes)
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Submission status updated successfully",
			"data":    map[string]any{"submission": sub},
		})
	}
}

// GET /api/admin/dashboard/stats
func (h *AdminHTTP) DashboardStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.svc.GetDashboardStats(r.Context())
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"success": true, "data": stats})
	}
}
