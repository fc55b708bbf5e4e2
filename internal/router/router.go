package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/wasimadildev/card-to-text-backend/internal/config"
	"github.com/wasimadildev/card-to-text-backend/internal/handlers"
	"github.com/wasimadildev/card-to-text-backend/internal/middleware"
	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository/postgres"
	"github.com/wasimadildev/card-to-text-backend/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(cfg))

	// Ops
	r.Get("/healthz", handlers.Health())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Repos + services + handlers
	userRepo := postgres.NewUserRepo(db)
	subRepo := postgres.NewSubmissionRepo(db)

	statsSvc := service.NewStatsService(subRepo)
	subSvc := service.NewSubmissionService(subRepo, statsSvc)
	adminSvc := service.NewAdminService(userRepo, subRepo, statsSvc, subSvc)
	authSvc := service.NewAuthService(userRepo, cfg.SessionSecret)

	ah := handlers.NewAuthHTTP(authSvc)
	sh := handlers.NewSubmissionHTTP(subSvc, log)
	adh := handlers.NewAdminHTTP(adminSvc, log)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", ah.Register())
		r.Post("/login", ah.Login())
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/logout", ah.Logout())
			r.Get("/profile", ah.Profile())
			r.Get("/verify", ah.Profile())
		})
	})

	r.Route("/api/submissions", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", sh.List())
		r.Post("/", sh.Create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", sh.Get())
			r.Put("/", sh.Update())
			r.Delete("/", sh.Delete())
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRoles(models.RoleAdmin))
		r.Get("/users", adh.ListUsers())
		r.Get("/users/{userId}", adh.UserDetail())
		r.Patch("/users/{userId}/toggle-status", adh.ToggleUserStatus())
		r.Get("/submissions", adh.ListSubmissions())
		r.Patch("/submissions/{id}/status", adh.UpdateStatus())
		r.Get("/dashboard/stats", adh.DashboardStats())
	})

	return r
}
