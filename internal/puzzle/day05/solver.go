package day05

import "github.com/aalvaropc/advent/internal/domain"

type Solver struct{}

func (Solver) Info() domain.PuzzleInfo {
	return domain.NewPuzzleInfo(5, "Supply Stacks")
}

func (Solver) Validate(input []byte) error {
	_, _, err := Parse(input)
	return err
}

func (Solver) Solve(input []byte) ([]domain.PartAnswer, error) {
	supply, procedures, err := Parse(input)
	if err != nil {
		return nil, err
	}

	var parts []domain.PartAnswer
	for i, crane := range []Crane{CrateMover9000, CrateMover9001} {
		tops, err := Rearrange(supply, procedures, crane)
		if err != nil {
			return nil, err
		}
		parts = append(parts, domain.PartAnswer{
			Part:     i + 1,
			Value:    tops,
			Template: "The top crates in the supply are: {{tops}}.",
			Vars:     domain.Vars{"tops": tops},
		})
	}
	return parts, nil
}
