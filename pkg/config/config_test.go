package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "salonx-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.True(t, cfg.Checkout.Atomic)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CHECKOUT_ATOMIC", "false")
	t.Setenv("DB_PASSWORD", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Checkout.Atomic)
	assert.Equal(t, "s3cr3t", cfg.DB.Password)
}

func TestDSN_EscapaSenhaComCaracteresEspeciais(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/w:rd",
		DBName:   "salonx",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://postgres:p%40ss%2Fw:rd@localhost:5432/salonx?sslmode=disable", db.DSN())
}

func TestConnectionString_DatabaseURLTemPrioridade(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/x?sslmode=require",
		Host:        "ignored",
	}
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=require", db.ConnectionString())
}
