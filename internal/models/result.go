// Package models defines the domain data structures exchanged through the API.
// It includes the optimization problem document and the solved result record.
package models

// Terminal statuses carried by a Result.
const (
	StatusOptimal         = "optimal"
	StatusInfeasible      = "infeasible"
	StatusUnbounded       = "unbounded"
	StatusError           = "error"
	StatusValidationError = "validation_error"
)

// Result is the domain-level outcome of one optimization request. Plan and
// utilization fields are populated only when Status is optimal.
type Result struct {
	Status              string                         `json:"status"`
	ObjectiveValue      *float64                       `json:"objective_value,omitempty"`
	ProductionPlan      map[string]float64             `json:"production_plan,omitempty"`
	ResourceUtilization map[string]ResourceUtilization `json:"resource_utilization,omitempty"`
	TotalProduction     *float64                       `json:"total_production,omitempty"`
	SolverMessage       string                         `json:"solver_message"`
	ValidationErrors    []string                       `json:"validation_errors,omitempty"`
	FeasibilityWarnings []string                       `json:"feasibility_warnings,omitempty"`
}

type ResourceUtilization struct {
	Used           float64 `json:"used"`
	Available      float64 `json:"available"`
	UtilizationPct float64 `json:"utilization_pct"`
}
