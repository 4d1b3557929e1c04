// Package day02 solves "Rock Paper Scissors": https://adventofcode.com/2022/day/2
package day02

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzle"
)

// Shape is a hand gesture; its value is the shape score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Beater returns the shape that beats s.
func (s Shape) Beater() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Victim returns the shape s beats.
func (s Shape) Victim() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// Outcome of a round from your point of view; its value is the outcome score.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Play returns the outcome of you against opponent.
func Play(opponent, you Shape) Outcome {
	switch {
	case opponent == you:
		return Draw
	case opponent.Beater() == you:
		return Win
	default:
		return Loss
	}
}

// Round is one line of the strategy guide: the opponent's code and the second column code.
type Round struct {
	Opponent byte
	Response byte
}

// Parse reads one "<A|B|C> <X|Y|Z>" round per line.
func Parse(input []byte) ([]Round, error) {
	text := puzzle.NormalizeInput(input)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	rounds := make([]Round, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
			return nil, domain.InvalidInput("day02.parse", fmt.Errorf("line %d: round is incomplete: %q", i+1, line))
		}
		r := Round{Opponent: fields[0][0], Response: fields[1][0]}
		if _, err := opponentShape(r.Opponent); err != nil {
			return nil, domain.InvalidInput("day02.parse", fmt.Errorf("line %d: %w", i+1, err))
		}
		if r.Response < 'X' || r.Response > 'Z' {
			return nil, domain.InvalidInput("day02.parse", fmt.Errorf("line %d: unknown response code %q", i+1, r.Response))
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

func opponentShape(code byte) (Shape, error) {
	switch code {
	case 'A':
		return Rock, nil
	case 'B':
		return Paper, nil
	case 'C':
		return Scissors, nil
	default:
		return 0, fmt.Errorf("unknown opponent code %q", code)
	}
}

// responseShape reads X/Y/Z as the shape to play.
func responseShape(code byte) Shape {
	return Shape(code-'X') + Rock
}

// intendedShape reads X/Y/Z as lose/draw/win and picks the shape achieving it.
func intendedShape(opponent Shape, code byte) Shape {
	switch code {
	case 'X':
		return opponent.Victim()
	case 'Y':
		return opponent
	default:
		return opponent.Beater()
	}
}

func score(opponent, you Shape) int {
	return int(you) + int(Play(opponent, you))
}

// ScoreAsShapes totals the rounds reading the second column as your shape.
func ScoreAsShapes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		opp, _ := opponentShape(r.Opponent)
		total += score(opp, responseShape(r.Response))
	}
	return total
}

// ScoreAsOutcomes totals the rounds reading the second column as the intended outcome.
func ScoreAsOutcomes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		opp, _ := opponentShape(r.Opponent)
		total += score(opp, intendedShape(opp, r.Response))
	}
	return total
}
