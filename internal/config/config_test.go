package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/careerbridge/jobboard/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "boards")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg := config.Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=hunter2 dbname=boards sslmode=disable",
		cfg.DSN())
}

func TestBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := config.Load()
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
