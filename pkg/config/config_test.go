package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/EmployeePortal-api/pkg/config"
)

func TestLoad_DefaultsEnDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, config.StorageMemory, cfg.DB.Driver)
	assert.NotEmpty(t, cfg.Session.Secret, "en development hay secret de respaldo")
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout())
	assert.Equal(t, 14*24*time.Hour, cfg.Session.RememberFor())
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestLoad_OpcionesDelPool(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_MAX_CONNS", "0")
	t.Setenv("DB_FORCE_IPV4", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.DB.MaxConns, "un valor no positivo vuelve al default")
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_IDLE_MINUTES", "45")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "Root123")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 45*time.Minute, cfg.Session.IdleTimeout())
	assert.Equal(t, "root@example.com", cfg.Admin.Email)
	assert.Equal(t, "Root123", cfg.Admin.Password)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_ProduccionSinSecretFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss word", DBName: "portal", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/portal?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@host/db"
	assert.Equal(t, "postgres://u:p@host/db", c.ConnectionString())
}
