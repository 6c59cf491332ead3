package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "dashboard")
	t.Setenv("SESSION_SECRET", "test-secret")
}

func TestLoad_ConVariablesRequeridas(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "dashboard", cfg.DB.DBName)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	// Defaults de lo no obligatorio
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "session", cfg.Session.CookieName)
}

func TestLoad_SinVariablesDeDB_Falla(t *testing.T) {
	// Sin defaults para DB: la ausencia se detecta al arrancar, no en el primer query.
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_SinSessionSecret_Falla(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "p@ss/word", DBName: "dashboard", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}
