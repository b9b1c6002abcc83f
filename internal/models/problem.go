// Package models defines the domain data structures exchanged through the API.
// It includes the optimization problem document and the solved result record.
package models

// Objective modes accepted in a problem document. The mode selects which
// per-unit field each Product must carry and the optimization direction.
const (
	MaximizeProfit = "maximize_profit"
	MinimizeCost   = "minimize_cost"
)

type Problem struct {
	Objective         string             `json:"objective"`
	Products          []Product          `json:"products"`
	Resources         []Resource         `json:"resources"`
	ResourceUsage     []ResourceUsage    `json:"resource_usage"`
	DemandConstraints []DemandConstraint `json:"demand_constraints,omitempty"`
	TotalConstraints  *TotalConstraints  `json:"total_constraints,omitempty"`
}

// Product describes one item the plan may produce. Exactly one of
// ProfitPerUnit/CostPerUnit is required, matching the problem's objective.
type Product struct {
	Name          string   `json:"name"`
	ProfitPerUnit *float64 `json:"profit_per_unit,omitempty"`
	CostPerUnit   *float64 `json:"cost_per_unit,omitempty"`
}

type Resource struct {
	Name              string   `json:"name"`
	AvailableCapacity *float64 `json:"available_capacity"`
}

// ResourceUsage is one sparse entry of the product-by-resource consumption
// matrix. Pairs without an entry consume nothing.
type ResourceUsage struct {
	ProductName  string   `json:"product_name"`
	ResourceName string   `json:"resource_name"`
	UsagePerUnit *float64 `json:"usage_per_unit"`
}

// DemandConstraint bounds one product's production quantity. At least one of
// the two bounds must be present.
type DemandConstraint struct {
	ProductName string   `json:"product_name"`
	MinDemand   *float64 `json:"min_demand,omitempty"`
	MaxDemand   *float64 `json:"max_demand,omitempty"`
}

// TotalConstraints bounds the summed production quantity across all products.
type TotalConstraints struct {
	MinTotal *float64 `json:"min_total,omitempty"`
	MaxTotal *float64 `json:"max_total,omitempty"`
}
