package optimizer

import (
	"fmt"
	"strings"

	"github.com/planfab/core/internal/models"
)

// ValidationError reports every violation found in a problem document, each
// message naming the offending field or reference.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid problem: " + strings.Join(e.Errors, "; ")
}

// Validate checks a parsed problem document against the given variant. It
// collects all violations instead of stopping at the first so the caller can
// correct the input in one pass. A nil return means the document is valid.
func Validate(p *models.Problem, v Variant) *ValidationError {
	var errs []string

	if p.Objective != models.MaximizeProfit && p.Objective != models.MinimizeCost {
		errs = append(errs, fmt.Sprintf("objective must be either '%s' or '%s'", models.MaximizeProfit, models.MinimizeCost))
	}

	productNames := make(map[string]bool, len(p.Products))
	for _, product := range p.Products {
		if product.Name == "" {
			errs = append(errs, "each product must have a name")
			continue
		}
		if productNames[product.Name] {
			errs = append(errs, fmt.Sprintf("duplicate product name: %s", product.Name))
			continue
		}
		productNames[product.Name] = true

		switch p.Objective {
		case models.MaximizeProfit:
			if product.ProfitPerUnit == nil {
				errs = append(errs, fmt.Sprintf("product '%s' is missing profit_per_unit", product.Name))
			} else if *product.ProfitPerUnit < 0 {
				errs = append(errs, fmt.Sprintf("product '%s' has negative profit_per_unit: %v", product.Name, *product.ProfitPerUnit))
			}
			if product.CostPerUnit != nil {
				errs = append(errs, fmt.Sprintf("product '%s' has cost_per_unit but objective is %s", product.Name, models.MaximizeProfit))
			}
		case models.MinimizeCost:
			if product.CostPerUnit == nil {
				errs = append(errs, fmt.Sprintf("product '%s' is missing cost_per_unit", product.Name))
			} else if *product.CostPerUnit < 0 {
				errs = append(errs, fmt.Sprintf("product '%s' has negative cost_per_unit: %v", product.Name, *product.CostPerUnit))
			}
			if product.ProfitPerUnit != nil {
				errs = append(errs, fmt.Sprintf("product '%s' has profit_per_unit but objective is %s", product.Name, models.MinimizeCost))
			}
		}
	}

	resourceNames := make(map[string]bool, len(p.Resources))
	for _, resource := range p.Resources {
		if resource.Name == "" {
			errs = append(errs, "each resource must have a name")
			continue
		}
		if resourceNames[resource.Name] {
			errs = append(errs, fmt.Sprintf("duplicate resource name: %s", resource.Name))
			continue
		}
		resourceNames[resource.Name] = true

		if resource.AvailableCapacity == nil {
			errs = append(errs, fmt.Sprintf("resource '%s' is missing available_capacity", resource.Name))
		} else if *resource.AvailableCapacity < 0 {
			errs = append(errs, fmt.Sprintf("resource '%s' has negative available_capacity: %v", resource.Name, *resource.AvailableCapacity))
		}
	}

	for _, ru := range p.ResourceUsage {
		if ru.ProductName == "" {
			errs = append(errs, "each resource usage entry must specify a product_name")
		} else if !productNames[ru.ProductName] {
			errs = append(errs, fmt.Sprintf("resource usage references unknown product: %s", ru.ProductName))
		}

		if ru.ResourceName == "" {
			errs = append(errs, "each resource usage entry must specify a resource_name")
		} else if !resourceNames[ru.ResourceName] {
			errs = append(errs, fmt.Sprintf("resource usage references unknown resource: %s", ru.ResourceName))
		}

		if ru.UsagePerUnit == nil {
			errs = append(errs, fmt.Sprintf("resource usage for %s and %s is missing usage_per_unit", ru.ProductName, ru.ResourceName))
		} else if *ru.UsagePerUnit < 0 {
			errs = append(errs, fmt.Sprintf("resource usage for %s and %s has negative usage_per_unit: %v", ru.ProductName, ru.ResourceName, *ru.UsagePerUnit))
		}
	}

	if !v.AllowDemand && len(p.DemandConstraints) > 0 {
		errs = append(errs, fmt.Sprintf("demand_constraints are not accepted by the %s variant", v.Name))
	}

	if v.AllowDemand {
		for _, dc := range p.DemandConstraints {
			if dc.ProductName == "" {
				errs = append(errs, "each demand constraint must specify a product_name")
			} else if !productNames[dc.ProductName] {
				errs = append(errs, fmt.Sprintf("demand constraint references unknown product: %s", dc.ProductName))
			}

			if dc.MinDemand == nil && dc.MaxDemand == nil {
				errs = append(errs, fmt.Sprintf("demand constraint for product '%s' must specify min_demand or max_demand", dc.ProductName))
				continue
			}
			if dc.MinDemand != nil && *dc.MinDemand < 0 {
				errs = append(errs, fmt.Sprintf("product '%s' has negative min_demand: %v", dc.ProductName, *dc.MinDemand))
			}
			if dc.MaxDemand != nil && *dc.MaxDemand < 0 {
				errs = append(errs, fmt.Sprintf("product '%s' has negative max_demand: %v", dc.ProductName, *dc.MaxDemand))
			}
			if dc.MinDemand != nil && dc.MaxDemand != nil && *dc.MinDemand > *dc.MaxDemand {
				errs = append(errs, fmt.Sprintf("product '%s' has min_demand (%v) greater than max_demand (%v)", dc.ProductName, *dc.MinDemand, *dc.MaxDemand))
			}
		}
	}

	if tc := p.TotalConstraints; tc != nil {
		if tc.MinTotal != nil && *tc.MinTotal < 0 {
			errs = append(errs, fmt.Sprintf("total constraints has negative min_total: %v", *tc.MinTotal))
		}
		if tc.MaxTotal != nil && *tc.MaxTotal < 0 {
			errs = append(errs, fmt.Sprintf("total constraints has negative max_total: %v", *tc.MaxTotal))
		}
		if tc.MinTotal != nil && tc.MaxTotal != nil && *tc.MinTotal > *tc.MaxTotal {
			errs = append(errs, fmt.Sprintf("total constraints has min_total (%v) greater than max_total (%v)", *tc.MinTotal, *tc.MaxTotal))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
