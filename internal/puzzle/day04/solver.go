package day04

import (
	"strconv"

	"github.com/aalvaropc/advent/internal/domain"
)

type Solver struct{}

func (Solver) Info() domain.PuzzleInfo {
	return domain.NewPuzzleInfo(4, "Camp Cleanup")
}

func (Solver) Validate(input []byte) error {
	_, err := Parse(input)
	return err
}

func (Solver) Solve(input []byte) ([]domain.PartAnswer, error) {
	pairs, err := Parse(input)
	if err != nil {
		return nil, err
	}

	included := strconv.Itoa(CountContained(pairs))
	overlapping := strconv.Itoa(CountOverlapping(pairs))

	return []domain.PartAnswer{
		{Part: 1, Value: included, Template: "Included pairs: {{count}}", Vars: domain.Vars{"count": included}},
		{Part: 2, Value: overlapping, Template: "Overlapping pairs: {{count}}", Vars: domain.Vars{"count": overlapping}},
	}, nil
}
