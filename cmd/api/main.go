// Package main starts the HTTP server for the production-planning
// optimization API. It wires configuration, the solving engine, and the
// handlers together; all optimization logic lives in the internal packages.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/planfab/core/cmd/api/middleware"
	"github.com/planfab/core/internal/config"
	"github.com/planfab/core/internal/handlers"
	"github.com/planfab/core/internal/solver"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	api := handlers.NewAPI(solver.NewSimplex(cfg.SolverTol), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/optimizers", api.ListOptimizers)
	mux.HandleFunc("/optimize/{variant}", api.Optimize)

	logger.Info("server starting", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, middleware.Cors(cfg.CORSAllowedOrigin, mux)); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
