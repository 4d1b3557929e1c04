package usecase

import (
	"sort"

	"github.com/aalvaropc/advent/internal/ports"
)

// resolveDays returns the requested days sorted and de-duplicated, or every
// registered day when none are requested. Unknown days fail before any work starts.
func resolveDays(catalog ports.SolverCatalog, days []int) ([]int, error) {
	if len(days) == 0 {
		return catalog.Days(), nil
	}

	seen := map[int]bool{}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		if _, err := catalog.Solver(d); err != nil {
			return nil, err
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}
