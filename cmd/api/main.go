package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/payroll-report/internal/config"
	appHTTP "github.com/cmlabs-hris/payroll-report/internal/handler/http"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/i18n"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-report/internal/pkg/logger"
	"github.com/cmlabs-hris/payroll-report/internal/repository/postgresql"
	salaryRegisterService "github.com/cmlabs-hris/payroll-report/internal/service/salaryregister"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.App)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	catalog, err := i18n.New(cfg.Report.DefaultLanguage)
	if err != nil {
		log.Error("failed to build message catalog", slog.Any("error", err))
		os.Exit(1)
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	salaryRegisterRepo := postgresql.NewSalaryRegisterRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	salaryRegisterSvc := salaryRegisterService.NewSalaryRegisterService(
		salaryRegisterRepo,
		companyRepo,
		catalog,
		cfg.Report,
		log,
	)

	salaryRegisterHandler := appHTTP.NewSalaryRegisterHandler(salaryRegisterSvc)
	router := appHTTP.NewRouter(cfg.App, JWTService, log, salaryRegisterHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", slog.Any("error", err))
		}
	}()

	log.Info("server running", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
