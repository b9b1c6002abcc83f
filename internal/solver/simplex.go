package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SimplexEngine solves models with gonum's dense simplex method.
type SimplexEngine struct {
	// Tol is the tolerance passed to the simplex routine; zero selects
	// gonum's default.
	Tol float64
}

func NewSimplex(tol float64) *SimplexEngine {
	return &SimplexEngine{Tol: tol}
}

// Solve converts the model to gonum's general form (minimize cᵀx subject to
// Gx ≤ h), then to standard form, and runs the simplex method. Maximization
// is handled by negating the objective. The conversion treats variables as
// free, so the implicit non-negativity bounds are emitted as explicit rows.
func (e *SimplexEngine) Solve(m *Model) Outcome {
	n := len(m.Variables)
	if n == 0 {
		return Outcome{Status: StatusError, Detail: "model has no variables"}
	}

	index := make(map[string]int, n)
	for i, name := range m.Variables {
		index[name] = i
	}

	c := make([]float64, n)
	for name, coeff := range m.Objective {
		c[index[name]] = coeff
	}
	if m.Direction == Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	rows := len(m.Constraints) + n
	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)
	for i, con := range m.Constraints {
		sign := 1.0
		if con.Sense == GreaterEq {
			sign = -1.0
		}
		for name, coeff := range con.Coeffs {
			g.Set(i, index[name], sign*coeff)
		}
		h[i] = sign * con.RHS
	}
	for j := range n {
		g.Set(len(m.Constraints)+j, j, -1.0)
	}

	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)

	opt, x, err := lp.Simplex(cStd, aStd, bStd, e.Tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return Outcome{Status: StatusInfeasible}
		case errors.Is(err, lp.ErrUnbounded):
			return Outcome{Status: StatusUnbounded}
		default:
			return Outcome{Status: StatusError, Detail: err.Error()}
		}
	}

	// Convert splits each free variable into a positive and a negative
	// part; the original value is their difference.
	values := make(map[string]float64, n)
	for i, name := range m.Variables {
		values[name] = x[i] - x[n+i]
	}

	if m.Direction == Maximize {
		opt = -opt
	}

	return Outcome{Status: StatusOptimal, Values: values, Objective: opt}
}
