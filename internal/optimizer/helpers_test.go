package optimizer

import "github.com/planfab/core/internal/models"

func fptr(v float64) *float64 { return &v }

// scenarioA is the one-product, one-resource maximize problem: product A
// yields 100 per unit and uses 2 units of machine M, which has 200 capacity.
func scenarioA() *models.Problem {
	return &models.Problem{
		Objective: models.MaximizeProfit,
		Products: []models.Product{
			{Name: "A", ProfitPerUnit: fptr(100)},
		},
		Resources: []models.Resource{
			{Name: "M", AvailableCapacity: fptr(200)},
		},
		ResourceUsage: []models.ResourceUsage{
			{ProductName: "A", ResourceName: "M", UsagePerUnit: fptr(2)},
		},
	}
}

func basicVariant() Variant {
	v, _ := VariantByName("basic")
	return v
}

func demandVariant() Variant {
	v, _ := VariantByName("demand-constrained")
	return v
}
