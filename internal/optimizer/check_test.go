package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfab/core/internal/models"
)

func TestCheckFeasibility(t *testing.T) {
	optimalResult := func() *models.Result {
		return &models.Result{
			Status:         models.StatusOptimal,
			ProductionPlan: map[string]float64{"A": 100},
			ResourceUtilization: map[string]models.ResourceUtilization{
				"M": {Used: 200, Available: 200, UtilizationPct: 100},
			},
		}
	}

	t.Run("clean plan yields no warnings", func(t *testing.T) {
		assert.Empty(t, CheckFeasibility(scenarioA(), optimalResult()))
	})

	t.Run("warns on tiny production quantity", func(t *testing.T) {
		res := optimalResult()
		res.ProductionPlan["A"] = 1e-9
		res.ResourceUtilization["M"] = models.ResourceUtilization{Used: 2e-9, Available: 200}

		warnings := CheckFeasibility(scenarioA(), res)

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "very small production quantity")
	})

	t.Run("warns on utilization mismatch", func(t *testing.T) {
		res := optimalResult()
		res.ResourceUtilization["M"] = models.ResourceUtilization{Used: 150, Available: 200}

		warnings := CheckFeasibility(scenarioA(), res)

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "differs from reported usage")
	})

	t.Run("warns when usage exceeds capacity", func(t *testing.T) {
		res := optimalResult()
		res.ProductionPlan["A"] = 150
		res.ResourceUtilization["M"] = models.ResourceUtilization{Used: 300, Available: 200}

		warnings := CheckFeasibility(scenarioA(), res)

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "exceeds available capacity")
	})

	t.Run("warns on violated demand bounds", func(t *testing.T) {
		p := scenarioA()
		p.DemandConstraints = []models.DemandConstraint{
			{ProductName: "A", MinDemand: fptr(150)},
		}

		warnings := CheckFeasibility(p, optimalResult())

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "violates minimum demand constraint")
	})

	t.Run("warns on violated total bounds", func(t *testing.T) {
		p := scenarioA()
		p.TotalConstraints = &models.TotalConstraints{MaxTotal: fptr(80)}

		warnings := CheckFeasibility(p, optimalResult())

		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "violates maximum total constraint")
	})
}
