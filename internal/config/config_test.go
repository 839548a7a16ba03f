package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "หักเงินประกันสังคม", cfg.Report.SocialSecurityComponent)
	assert.Equal(t, []string{"หักเงินลาเกินสิทธิ์", "หักเงินอื่นๆ"}, cfg.Report.PenaltyComponents)
}

func TestLoad_PenaltyComponentsFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("REPORT_PENALTY_COMPONENTS", " Late Penalty , ,Other ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Late Penalty", "Other"}, cfg.Report.PenaltyComponents)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid APP_PORT")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD is required")

	cfg.Database.Password = "secret"
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET_KEY is required")

	cfg.JWT.Secret = "jwt"
	cfg.Database.MinConns = 10
	cfg.Database.MaxConns = 5
	assert.Error(t, cfg.Validate())

	cfg.Database.MaxConns = 10
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Name: "hris", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5433/hris?sslmode=disable", cfg.DatabaseURL())
}
