package day01

import (
	"strconv"

	"github.com/aalvaropc/advent/internal/domain"
)

type Solver struct{}

func (Solver) Info() domain.PuzzleInfo {
	return domain.NewPuzzleInfo(1, "Calorie Counting")
}

func (Solver) Validate(input []byte) error {
	_, err := Parse(input)
	return err
}

func (Solver) Solve(input []byte) ([]domain.PartAnswer, error) {
	elves, err := Parse(input)
	if err != nil {
		return nil, err
	}

	pos, most, err := MostCalories(elves)
	if err != nil {
		return nil, err
	}
	top := TopCalories(elves, 3)

	return []domain.PartAnswer{
		{
			Part:     1,
			Value:    strconv.FormatUint(most, 10),
			Template: "Elf #{{elf}} has the most calories totaling at {{calories}}.",
			Vars: domain.Vars{
				"elf":      strconv.Itoa(pos),
				"calories": strconv.FormatUint(most, 10),
			},
		},
		{
			Part:     2,
			Value:    strconv.FormatUint(top, 10),
			Template: "The top three elves have {{calories}} calories of snacks.",
			Vars:     domain.Vars{"calories": strconv.FormatUint(top, 10)},
		},
	}, nil
}
