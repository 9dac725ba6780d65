package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"petshop/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "petshop.db", cfg.Database.DSN)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.False(t, cfg.ReleaseOnCancel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongodb")

	cfg, err := config.Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=db user=petshop dbname=petshop")
	t.Setenv("RELEASE_ON_CANCEL", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=petshop dbname=petshop", cfg.Database.DSN)
	assert.True(t, cfg.ReleaseOnCancel)
	assert.Equal(t, "debug", cfg.LogLevel)
}
