package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfab/core/internal/models"
	"github.com/planfab/core/internal/solver"
)

func TestExtract(t *testing.T) {
	t.Run("optimal outcome populates plan and utilization", func(t *testing.T) {
		p := scenarioA()
		out := solver.Outcome{
			Status:    solver.StatusOptimal,
			Values:    map[string]float64{"A": 100},
			Objective: 10000,
		}

		result := Extract(p, out)

		assert.Equal(t, models.StatusOptimal, result.Status)
		require.NotNil(t, result.ObjectiveValue)
		assert.Equal(t, 10000.0, *result.ObjectiveValue)
		assert.Equal(t, map[string]float64{"A": 100}, result.ProductionPlan)
		require.NotNil(t, result.TotalProduction)
		assert.Equal(t, 100.0, *result.TotalProduction)
		assert.Equal(t, "Optimal solution found", result.SolverMessage)

		util := result.ResourceUtilization["M"]
		assert.Equal(t, 200.0, util.Used)
		assert.Equal(t, 200.0, util.Available)
		assert.Equal(t, 100.0, util.UtilizationPct)
	})

	t.Run("clamps solver noise to zero", func(t *testing.T) {
		p := scenarioA()
		out := solver.Outcome{
			Status: solver.StatusOptimal,
			Values: map[string]float64{"A": 3e-12},
		}

		result := Extract(p, out)

		assert.Equal(t, 0.0, result.ProductionPlan["A"])
		assert.Equal(t, 0.0, result.ResourceUtilization["M"].Used)
	})

	t.Run("keeps values at or above the epsilon", func(t *testing.T) {
		p := scenarioA()
		out := solver.Outcome{
			Status: solver.StatusOptimal,
			Values: map[string]float64{"A": 1e-7},
		}

		result := Extract(p, out)

		assert.Equal(t, 1e-7, result.ProductionPlan["A"])
	})

	t.Run("zero-capacity resource reports zero percent", func(t *testing.T) {
		p := scenarioA()
		p.Resources[0].AvailableCapacity = fptr(0)
		out := solver.Outcome{
			Status: solver.StatusOptimal,
			Values: map[string]float64{"A": 0},
		}

		result := Extract(p, out)

		util := result.ResourceUtilization["M"]
		assert.Equal(t, 0.0, util.Used)
		assert.Equal(t, 0.0, util.Available)
		assert.Equal(t, 0.0, util.UtilizationPct)
	})

	t.Run("unreferenced resource reports zero utilization", func(t *testing.T) {
		p := scenarioA()
		p.Resources = append(p.Resources, models.Resource{Name: "Idle", AvailableCapacity: fptr(50)})
		out := solver.Outcome{
			Status:    solver.StatusOptimal,
			Values:    map[string]float64{"A": 100},
			Objective: 10000,
		}

		result := Extract(p, out)

		util := result.ResourceUtilization["Idle"]
		assert.Equal(t, 0.0, util.Used)
		assert.Equal(t, 50.0, util.Available)
		assert.Equal(t, 0.0, util.UtilizationPct)
	})

	t.Run("infeasible outcome carries only status and message", func(t *testing.T) {
		result := Extract(scenarioA(), solver.Outcome{Status: solver.StatusInfeasible})

		assert.Equal(t, models.StatusInfeasible, result.Status)
		assert.Equal(t, "The model is infeasible", result.SolverMessage)
		assert.Nil(t, result.ObjectiveValue)
		assert.Nil(t, result.ProductionPlan)
		assert.Nil(t, result.ResourceUtilization)
		assert.Nil(t, result.TotalProduction)
	})

	t.Run("unbounded outcome carries only status and message", func(t *testing.T) {
		result := Extract(scenarioA(), solver.Outcome{Status: solver.StatusUnbounded})

		assert.Equal(t, models.StatusUnbounded, result.Status)
		assert.Contains(t, result.SolverMessage, "unbounded")
		assert.Nil(t, result.ProductionPlan)
	})

	t.Run("engine error carries the detail", func(t *testing.T) {
		result := Extract(scenarioA(), solver.Outcome{
			Status: solver.StatusError,
			Detail: "lp: A is singular",
		})

		assert.Equal(t, models.StatusError, result.Status)
		assert.Equal(t, "Solver failure: lp: A is singular", result.SolverMessage)
	})

	t.Run("engine error without detail gets a generic message", func(t *testing.T) {
		result := Extract(scenarioA(), solver.Outcome{Status: solver.StatusError})

		assert.Equal(t, "Solver failure", result.SolverMessage)
	})
}
