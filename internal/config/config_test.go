package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHelpers_DefaultsWhenUnset(t *testing.T) {
	assert.Equal(t, "8080", getEnv("TASKBOARD_TEST_UNSET_PORT", "8080"))
	assert.Equal(t, 15*time.Minute, getDuration("TASKBOARD_TEST_UNSET_TTL", 15*time.Minute))
	assert.Equal(t, bcrypt.DefaultCost, getInt("TASKBOARD_TEST_UNSET_COST", bcrypt.DefaultCost))
	assert.True(t, getBool("TASKBOARD_TEST_UNSET_SECURE", true))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("JWT_REFRESH_TTL", "48h")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("PAGE_DEFAULT_TAKE", "20")
	t.Setenv("COOKIE_SECURE", "false")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 48*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, 20, cfg.PageTake)
	assert.False(t, cfg.CookieSecure)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")
	t.Setenv("BCRYPT_COST", "-3")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.True(t, cfg.CookieSecure)
}
