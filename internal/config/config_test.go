// Package config loads service configuration from the environment with sane
// defaults. Settings only affect the service layer; the optimization core
// has no environment-driven behavior.
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "*", cfg.CORSAllowedOrigin)
		assert.Equal(t, 0.0, cfg.SolverTol)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PLANFAB_LISTEN_ADDR", ":9090")
		t.Setenv("PLANFAB_CORS_ALLOWED_ORIGIN", "https://planfab.example")
		t.Setenv("PLANFAB_SOLVER_TOL", "1e-9")

		cfg := Load()

		assert.Equal(t, ":9090", cfg.ListenAddr)
		assert.Equal(t, "https://planfab.example", cfg.CORSAllowedOrigin)
		assert.Equal(t, 1e-9, cfg.SolverTol)
	})
}
