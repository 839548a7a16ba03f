package http

import (
	"log/slog"

	"github.com/cmlabs-hris/payroll-report/internal/config"
	"github.com/cmlabs-hris/payroll-report/internal/domain/user"
	"github.com/cmlabs-hris/payroll-report/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(cfg config.AppConfig, JWTService jwt.Service, logger *slog.Logger, salaryRegisterHandler SalaryRegisterHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Route("/reports/salary-register-summary", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionReportsView)).Get("/", salaryRegisterHandler.GetReport)
				r.With(middleware.RequirePermission(user.PermissionReportsView)).Get("/filters", salaryRegisterHandler.GetFilters)
				r.With(middleware.RequirePermission(user.PermissionReportsExport)).Get("/export", salaryRegisterHandler.Export)
			})
		})
	})

	return r
}
