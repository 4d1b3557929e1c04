package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/advent/internal/ports"
)

type ValidateInputs struct {
	inputs  ports.InputLoader
	catalog ports.SolverCatalog
}

func NewValidateInputs(il ports.InputLoader, sc ports.SolverCatalog) *ValidateInputs {
	return &ValidateInputs{inputs: il, catalog: sc}
}

// Execute parses the input of every requested day without computing answers.
// It stops at the first day that fails.
func (uc *ValidateInputs) Execute(ctx context.Context, days []int) error {
	days, err := resolveDays(uc.catalog, days)
	if err != nil {
		return err
	}

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return err
		}

		solver, err := uc.catalog.Solver(day)
		if err != nil {
			return err
		}
		data, path, err := uc.inputs.LoadInput(day)
		if err != nil {
			return err
		}
		if err := solver.Validate(data); err != nil {
			return fmt.Errorf("day %d (%s): %w", day, path, err)
		}
	}
	return nil
}
