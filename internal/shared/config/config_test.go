package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionModeDetection(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	t.Setenv("GIN_MODE", "debug")
	cfg = Load()
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
}

func TestUsesDefaultJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := Load()
	assert.True(t, cfg.UsesDefaultJWTSecret())

	t.Setenv("JWT_SECRET", "rotated-secret")
	cfg = Load()
	assert.False(t, cfg.UsesDefaultJWTSecret())
}

func TestGetAPIBasePath(t *testing.T) {
	t.Setenv("API_PREFIX", "/api")
	t.Setenv("API_VERSION", "v1")
	cfg := Load()
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
}
