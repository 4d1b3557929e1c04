package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
)

// Solver solves both parts of one day.
type Solver interface {
	Info() domain.PuzzleInfo
	// Validate parses input without computing the answers.
	Validate(input []byte) error
	Solve(input []byte) ([]domain.PartAnswer, error)
}

// Registry maps a day number to its solver.
type Registry struct {
	byDay map[int]Solver
}

func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{byDay: map[int]Solver{}}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing any solver already registered for the same day.
func (r *Registry) Register(s Solver) {
	r.byDay[s.Info().Day] = s
}

func (r *Registry) Solver(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, &domain.OpError{
			Op:   "puzzle.solver",
			Kind: domain.KindUnknownDay,
			Err:  fmt.Errorf("no solver for day %d", day),
		}
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// NormalizeInput converts CRLF line endings and strips trailing newlines.
// Leading whitespace is kept: the day 5 drawing depends on it.
func NormalizeInput(input []byte) string {
	s := strings.ReplaceAll(string(input), "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Sections splits normalized input on blank lines.
func Sections(input string) []string {
	return strings.Split(input, "\n\n")
}
