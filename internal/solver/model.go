// Package solver defines the abstract optimization model and the contract
// for engines that solve it. Any LP engine honoring the Engine interface can
// back the service; a pure-Go simplex implementation is bundled.
package solver

// Direction of optimization.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Sense of a linear constraint row.
type Sense int

const (
	LessEq Sense = iota
	GreaterEq
)

// Model is an abstract linear program: continuous non-negative decision
// variables, a linear objective, and a set of linear constraint rows.
// A Model is built once per request and must not be mutated afterwards.
type Model struct {
	Direction Direction

	// Variables fixes the variable order. Every variable is continuous
	// with an implicit lower bound of zero.
	Variables []string

	// Objective maps variable name to its objective coefficient.
	Objective map[string]float64

	Constraints []Constraint
}

// Constraint is one linear row: sum(Coeffs[v] * v) Sense RHS. Variables
// absent from Coeffs have coefficient zero; a row with no coefficients is
// vacuous but kept so reporting stays uniform.
type Constraint struct {
	Name   string
	Coeffs map[string]float64
	Sense  Sense
	RHS    float64
}
