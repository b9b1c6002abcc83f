// Package config loads service configuration from the environment with sane
// defaults. Settings only affect the service layer; the optimization core
// has no environment-driven behavior.
package config

import "github.com/spf13/viper"

type Config struct {
	ListenAddr        string
	CORSAllowedOrigin string

	// SolverTol is passed through to the simplex engine; zero keeps the
	// engine's default tolerance.
	SolverTol float64
}

// Load reads configuration from PLANFAB_-prefixed environment variables.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("planfab")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("cors_allowed_origin", "*")
	v.SetDefault("solver_tol", 0.0)

	return &Config{
		ListenAddr:        v.GetString("listen_addr"),
		CORSAllowedOrigin: v.GetString("cors_allowed_origin"),
		SolverTol:         v.GetFloat64("solver_tol"),
	}
}
