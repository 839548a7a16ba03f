package logger

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/payroll-report/internal/config"
	"github.com/go-chi/httplog/v3"
)

// New returns a JSON logger in the ECS shape the request logger uses, so
// application and access logs share one schema.
func New(w io.Writer, cfg config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.Name),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
}
