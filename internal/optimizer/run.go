package optimizer

import (
	"errors"

	"github.com/planfab/core/internal/models"
	"github.com/planfab/core/internal/solver"
)

// Run executes the full pipeline for one request: validate, build, solve,
// extract, and re-check. Validation failures and engine failures come back
// as results with the matching status rather than as errors; infeasible and
// unbounded are ordinary terminal outcomes, not failures.
func Run(p *models.Problem, v Variant, engine solver.Engine) *models.Result {
	m, err := Build(p, v)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return &models.Result{
				Status:           models.StatusValidationError,
				SolverMessage:    "Input validation failed",
				ValidationErrors: verr.Errors,
			}
		}
		return &models.Result{
			Status:        models.StatusError,
			SolverMessage: err.Error(),
		}
	}

	result := Extract(p, engine.Solve(m))
	if result.Status == models.StatusOptimal {
		result.FeasibilityWarnings = CheckFeasibility(p, result)
	}
	return result
}
