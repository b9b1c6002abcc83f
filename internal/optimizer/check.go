package optimizer

import (
	"fmt"

	"github.com/planfab/core/internal/models"
)

// Tolerance for the post-solve re-check; looser than the extraction epsilon
// because it compares accumulated sums.
const checkEpsilon = 1e-6

// CheckFeasibility re-verifies an optimal result against the original
// document and returns a warning per violated constraint. An empty slice
// means the plan independently satisfies everything it was solved under.
func CheckFeasibility(p *models.Problem, res *models.Result) []string {
	var warnings []string

	for _, product := range p.Products {
		quantity := res.ProductionPlan[product.Name]
		if quantity > 0 && quantity < checkEpsilon {
			warnings = append(warnings, fmt.Sprintf("product '%s' has very small production quantity (%v), might be numerical precision issue", product.Name, quantity))
		}
	}

	usage := usageByProduct(p)
	for _, resource := range p.Resources {
		used := 0.0
		for productName, perUnit := range usage {
			if rate, ok := perUnit[resource.Name]; ok {
				used += rate * res.ProductionPlan[productName]
			}
		}

		if reported, ok := res.ResourceUtilization[resource.Name]; ok {
			if diff := used - reported.Used; diff > checkEpsilon || diff < -checkEpsilon {
				warnings = append(warnings, fmt.Sprintf("resource '%s' calculated usage (%v) differs from reported usage (%v)", resource.Name, used, reported.Used))
			}
		}
		if used > *resource.AvailableCapacity+checkEpsilon {
			warnings = append(warnings, fmt.Sprintf("resource '%s' usage (%v) exceeds available capacity (%v)", resource.Name, used, *resource.AvailableCapacity))
		}
	}

	for _, dc := range p.DemandConstraints {
		quantity := res.ProductionPlan[dc.ProductName]
		if dc.MinDemand != nil && quantity < *dc.MinDemand-checkEpsilon {
			warnings = append(warnings, fmt.Sprintf("product '%s' production (%v) violates minimum demand constraint (%v)", dc.ProductName, quantity, *dc.MinDemand))
		}
		if dc.MaxDemand != nil && quantity > *dc.MaxDemand+checkEpsilon {
			warnings = append(warnings, fmt.Sprintf("product '%s' production (%v) violates maximum demand constraint (%v)", dc.ProductName, quantity, *dc.MaxDemand))
		}
	}

	if tc := p.TotalConstraints; tc != nil {
		total := 0.0
		for _, quantity := range res.ProductionPlan {
			total += quantity
		}
		if tc.MinTotal != nil && total < *tc.MinTotal-checkEpsilon {
			warnings = append(warnings, fmt.Sprintf("total production (%v) violates minimum total constraint (%v)", total, *tc.MinTotal))
		}
		if tc.MaxTotal != nil && total > *tc.MaxTotal+checkEpsilon {
			warnings = append(warnings, fmt.Sprintf("total production (%v) violates maximum total constraint (%v)", total, *tc.MaxTotal))
		}
	}

	return warnings
}
