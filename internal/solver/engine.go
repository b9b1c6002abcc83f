package solver

// Status is the terminal state of one solve.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusError
)

// Outcome is the discriminated result of a solve. Values and Objective are
// populated only for StatusOptimal; Detail only for StatusError.
type Outcome struct {
	Status    Status
	Values    map[string]float64
	Objective float64
	Detail    string
}

// Engine solves an abstract model. Implementations must treat the model as
// read-only and must report failures through the outcome, never panic.
// Engines hold no per-solve state, so one instance is safe to share across
// concurrent requests.
type Engine interface {
	Solve(m *Model) Outcome
}
