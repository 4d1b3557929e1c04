package day03

import (
	"strconv"

	"github.com/aalvaropc/advent/internal/domain"
)

type Solver struct{}

func (Solver) Info() domain.PuzzleInfo {
	return domain.NewPuzzleInfo(3, "Rucksack Reorganization")
}

func (Solver) Validate(input []byte) error {
	_, err := Parse(input)
	return err
}

func (Solver) Solve(input []byte) ([]domain.PartAnswer, error) {
	rucksacks, err := Parse(input)
	if err != nil {
		return nil, err
	}

	misplaced, err := MisplacedPriority(rucksacks)
	if err != nil {
		return nil, err
	}
	badges, err := BadgePriority(rucksacks)
	if err != nil {
		return nil, err
	}

	one, two := strconv.Itoa(misplaced), strconv.Itoa(badges)
	return []domain.PartAnswer{
		{Part: 1, Value: one, Template: "The total score is: {{score}}", Vars: domain.Vars{"score": one}},
		{Part: 2, Value: two, Template: "The total score is: {{score}}", Vars: domain.Vars{"score": two}},
	}, nil
}
