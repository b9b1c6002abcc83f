// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/planfab/core/internal/models"
	"github.com/planfab/core/internal/optimizer"
	"github.com/planfab/core/internal/parser"
	"github.com/planfab/core/internal/solver"
)

// API holds the handler dependencies. It is stateless and safe to share
// across concurrent requests.
type API struct {
	engine solver.Engine
	logger *slog.Logger
}

func NewAPI(engine solver.Engine, logger *slog.Logger) *API {
	return &API{engine: engine, logger: logger}
}

// Optimize solves one production-planning problem. The variant path segment
// selects how the document is interpreted; see optimizer.Variants.
func (a *API) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	variant, ok := optimizer.VariantByName(r.PathValue("variant"))
	if !ok {
		http.Error(w, "Unknown optimizer type: "+r.PathValue("variant"), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	problem, err := parser.ParseProblem(body)
	if err != nil {
		http.Error(w, "Invalid problem: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := optimizer.Run(problem, variant, a.engine)

	code := http.StatusOK
	switch result.Status {
	case models.StatusValidationError:
		code = http.StatusBadRequest
	case models.StatusError:
		code = http.StatusInternalServerError
		a.logger.Error("solve failed", "variant", variant.Name, "message", result.SolverMessage)
	}
	if code == http.StatusOK {
		a.logger.Info("problem solved", "variant", variant.Name, "status", result.Status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(result); err != nil {
		a.logger.Error("encoding response", "error", err)
	}
}

// ListOptimizers reports the registered variant names.
func (a *API) ListOptimizers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	response := map[string][]string{"optimizers": optimizer.Variants()}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.Error("encoding response", "error", err)
	}
}
