package ports

import "github.com/aalvaropc/advent/internal/puzzle"

// SolverCatalog resolves the solver of a day.
type SolverCatalog interface {
	Solver(day int) (puzzle.Solver, error)
	Days() []int
}
