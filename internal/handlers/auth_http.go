package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/middleware"
	"github.com/wasimadildev/card-to-text-backend/internal/service"
	"github.com/wasimadildev/card-to-text-backend/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP {
	return &AuthHTTP{svc: s}
}

// POST /api/auth/register
func (h *AuthHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := h.svc.Register(r.Context(), in.Email, in.Name, in.Password)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"user": u},
		})
	}
}

// POST /api/auth/login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, service.ErrAccountDisabled) {
				utils.Error(w, http.StatusForbidden, "account is deactivated")
				return
			}
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		// Issue httpOnly session cookie
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			// Lax works for same-origin (frontend via Nginx proxy)
			SameSite: http.SameSiteLaxMode,
			// Set true behind HTTPS in prod
			Secure:  false,
			Expires: time.Now().Add(24 * time.Hour),
		})

		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"user": u, "token": token},
		})
	}
}

// POST /api/auth/logout
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Logged out successfully",
		})
	}
}

// GET /api/auth/profile and /api/auth/verify
func (h *AuthHTTP) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetString(r.Context(), middleware.CtxUserID)
		if !ok || uid == "" {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		u, err := h.svc.Profile(r.Context(), uid)
		if err != nil || u == nil {
			utils.Error(w, http.StatusNotFound, "User not found")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"user": u},
		})
	}
}
