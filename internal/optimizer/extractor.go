package optimizer

import (
	"math"

	"github.com/planfab/core/internal/models"
	"github.com/planfab/core/internal/solver"
)

// Solved values with magnitude below epsilon are solver noise and reported
// as exactly zero.
const epsilon = 1e-8

// Extract maps a solve outcome back to domain terms. Optimal outcomes get
// the full plan, utilization, and objective; the other terminal statuses get
// only a status and a descriptive message. Extract never fails.
func Extract(p *models.Problem, out solver.Outcome) *models.Result {
	switch out.Status {
	case solver.StatusOptimal:
		plan := make(map[string]float64, len(p.Products))
		total := 0.0
		for _, product := range p.Products {
			value := out.Values[product.Name]
			if math.Abs(value) < epsilon {
				value = 0
			}
			plan[product.Name] = value
			total += value
		}

		objective := out.Objective
		return &models.Result{
			Status:              models.StatusOptimal,
			ObjectiveValue:      &objective,
			ProductionPlan:      plan,
			ResourceUtilization: utilization(p, plan),
			TotalProduction:     &total,
			SolverMessage:       "Optimal solution found",
		}
	case solver.StatusInfeasible:
		return &models.Result{
			Status:        models.StatusInfeasible,
			SolverMessage: "The model is infeasible",
		}
	case solver.StatusUnbounded:
		return &models.Result{
			Status:        models.StatusUnbounded,
			SolverMessage: "The model is unbounded (no finite optimal solution exists)",
		}
	default:
		message := "Solver failure"
		if out.Detail != "" {
			message = "Solver failure: " + out.Detail
		}
		return &models.Result{
			Status:        models.StatusError,
			SolverMessage: message,
		}
	}
}

// utilization reports, per resource, how much of its capacity the plan
// consumes. A zero-capacity resource reports 0% rather than dividing by zero.
func utilization(p *models.Problem, plan map[string]float64) map[string]models.ResourceUtilization {
	usage := usageByProduct(p)

	result := make(map[string]models.ResourceUtilization, len(p.Resources))
	for _, resource := range p.Resources {
		available := *resource.AvailableCapacity
		used := 0.0
		for productName, perUnit := range usage {
			if rate, ok := perUnit[resource.Name]; ok {
				used += rate * plan[productName]
			}
		}

		pct := 0.0
		if available > 0 {
			pct = used / available * 100
		}
		result[resource.Name] = models.ResourceUtilization{
			Used:           used,
			Available:      available,
			UtilizationPct: pct,
		}
	}
	return result
}
