package optimizer

import (
	"github.com/planfab/core/internal/models"
	"github.com/planfab/core/internal/solver"
)

// Build validates the document and constructs the abstract model for it:
// one continuous non-negative variable per product, a linear objective per
// the declared mode, one capacity row per resource, and bound rows for any
// demand and total-production constraints. Rows and variables follow
// document order, so the same document always yields the same model.
// On invalid input Build returns a *ValidationError and no model.
func Build(p *models.Problem, v Variant) (*solver.Model, error) {
	if verr := Validate(p, v); verr != nil {
		return nil, verr
	}

	m := &solver.Model{
		Direction: solver.Maximize,
		Variables: make([]string, 0, len(p.Products)),
		Objective: make(map[string]float64, len(p.Products)),
	}
	if p.Objective == models.MinimizeCost {
		m.Direction = solver.Minimize
	}

	for _, product := range p.Products {
		m.Variables = append(m.Variables, product.Name)
		if p.Objective == models.MaximizeProfit {
			m.Objective[product.Name] = *product.ProfitPerUnit
		} else {
			m.Objective[product.Name] = *product.CostPerUnit
		}
	}

	usage := usageByProduct(p)

	// A resource nobody consumes still gets its row so utilization
	// reporting stays uniform.
	for _, resource := range p.Resources {
		con := solver.Constraint{
			Name:   "resource_" + resource.Name,
			Coeffs: make(map[string]float64),
			Sense:  solver.LessEq,
			RHS:    *resource.AvailableCapacity,
		}
		for _, product := range p.Products {
			if u, ok := usage[product.Name][resource.Name]; ok && u != 0 {
				con.Coeffs[product.Name] = u
			}
		}
		m.Constraints = append(m.Constraints, con)
	}

	for _, dc := range p.DemandConstraints {
		if dc.MinDemand != nil {
			m.Constraints = append(m.Constraints, solver.Constraint{
				Name:   "min_demand_" + dc.ProductName,
				Coeffs: map[string]float64{dc.ProductName: 1},
				Sense:  solver.GreaterEq,
				RHS:    *dc.MinDemand,
			})
		}
		if dc.MaxDemand != nil {
			m.Constraints = append(m.Constraints, solver.Constraint{
				Name:   "max_demand_" + dc.ProductName,
				Coeffs: map[string]float64{dc.ProductName: 1},
				Sense:  solver.LessEq,
				RHS:    *dc.MaxDemand,
			})
		}
	}

	if tc := p.TotalConstraints; tc != nil {
		total := make(map[string]float64, len(p.Products))
		for _, product := range p.Products {
			total[product.Name] = 1
		}
		if tc.MinTotal != nil {
			m.Constraints = append(m.Constraints, solver.Constraint{
				Name:   "min_total_production",
				Coeffs: total,
				Sense:  solver.GreaterEq,
				RHS:    *tc.MinTotal,
			})
		}
		if tc.MaxTotal != nil {
			m.Constraints = append(m.Constraints, solver.Constraint{
				Name:   "max_total_production",
				Coeffs: total,
				Sense:  solver.LessEq,
				RHS:    *tc.MaxTotal,
			})
		}
	}

	return m, nil
}

// usageByProduct folds the sparse usage entries into a product → resource →
// rate lookup. A pair listed twice keeps the last entry.
func usageByProduct(p *models.Problem) map[string]map[string]float64 {
	usage := make(map[string]map[string]float64)
	for _, ru := range p.ResourceUsage {
		if usage[ru.ProductName] == nil {
			usage[ru.ProductName] = make(map[string]float64)
		}
		usage[ru.ProductName][ru.ResourceName] = *ru.UsagePerUnit
	}
	return usage
}
