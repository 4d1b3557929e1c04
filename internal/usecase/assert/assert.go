package assert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
)

// Answer compares one expected part answer with the computed one.
func Answer(part int, expected string, got domain.PartAnswer, computed bool) domain.AssertionResult {
	name := fmt.Sprintf("part %d", part)
	if !computed {
		return domain.AssertionResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("part %d was not computed", part),
		}
	}

	want := strings.TrimSpace(expected)
	if got.Value == want {
		return domain.AssertionResult{
			Name:    name,
			Passed:  true,
			Message: fmt.Sprintf("answer %s", got.Value),
		}
	}

	return domain.AssertionResult{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("expected %q, got %q", want, got.Value),
	}
}

// Evaluate checks every expected part of exp against the computed day.
// Results are ordered by part number.
func Evaluate(exp domain.Expectation, got domain.DayResult) []domain.AssertionResult {
	parts := make([]int, 0, len(exp.Parts))
	for p := range exp.Parts {
		parts = append(parts, p)
	}
	sort.Ints(parts)

	out := make([]domain.AssertionResult, 0, len(parts))
	for _, p := range parts {
		ans, ok := got.Part(p)
		out = append(out, Answer(p, exp.Parts[p], ans, ok))
	}
	return out
}
