package day02

import (
	"strconv"

	"github.com/aalvaropc/advent/internal/domain"
)

type Solver struct{}

func (Solver) Info() domain.PuzzleInfo {
	return domain.NewPuzzleInfo(2, "Rock Paper Scissors")
}

func (Solver) Validate(input []byte) error {
	_, err := Parse(input)
	return err
}

func (Solver) Solve(input []byte) ([]domain.PartAnswer, error) {
	rounds, err := Parse(input)
	if err != nil {
		return nil, err
	}

	one := strconv.Itoa(ScoreAsShapes(rounds))
	two := strconv.Itoa(ScoreAsOutcomes(rounds))

	return []domain.PartAnswer{
		{Part: 1, Value: one, Template: "Total score is: {{score}}", Vars: domain.Vars{"score": one}},
		{Part: 2, Value: two, Template: "Total score is: {{score}}", Vars: domain.Vars{"score": two}},
	}, nil
}
