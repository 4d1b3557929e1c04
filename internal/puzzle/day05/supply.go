// Package day05 solves "Supply Stacks": https://adventofcode.com/2022/day/5
package day05

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzle"
)

// cellWidth is the number of characters each column takes in the drawing ("[X] ").
const cellWidth = 4

// Crane selects how a procedure moves crates.
type Crane int

const (
	// CrateMover9000 moves crates one at a time.
	CrateMover9000 Crane = 9000
	// CrateMover9001 moves several crates at once, keeping their order.
	CrateMover9001 Crane = 9001
)

// Supply is the set of crate stacks; the last element of a stack is its top crate.
type Supply struct {
	Stacks [][]byte
}

// Clone returns a deep copy so each crane starts from the same drawing.
func (s Supply) Clone() Supply {
	out := Supply{Stacks: make([][]byte, len(s.Stacks))}
	for i, st := range s.Stacks {
		out.Stacks[i] = slices.Clone(st)
	}
	return out
}

// Procedure is one "move N from A to B" step, with zero-based stack indexes.
type Procedure struct {
	Amount int
	From   int
	To     int
}

func (p Procedure) String() string {
	return fmt.Sprintf("move %d from %d to %d", p.Amount, p.From+1, p.To+1)
}

// ParseDrawing reads the crate drawing; its last line holds the column labels.
func ParseDrawing(section string) (Supply, error) {
	lines := strings.Split(section, "\n")
	if len(lines) == 0 {
		return Supply{}, errors.New("failed to find supply section")
	}

	labels := strings.Fields(lines[len(lines)-1])
	if len(labels) == 0 {
		return Supply{}, errors.New("missing column labels")
	}
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return Supply{}, fmt.Errorf("unexpected column label %q at position %d", l, i+1)
		}
	}

	supply := Supply{Stacks: make([][]byte, len(labels))}
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for pos := 0; pos < len(line); pos++ {
			c := line[pos]
			if !isCrate(c) {
				continue
			}
			if pos%cellWidth != 1 {
				return Supply{}, fmt.Errorf("line %d: crate %q is not aligned to a column", row+1, c)
			}
			col := (pos - 1) / cellWidth
			if col >= len(supply.Stacks) {
				return Supply{}, fmt.Errorf("line %d: wasn't able to find column at index: %d", row+1, col+1)
			}
			supply.Stacks[col] = append(supply.Stacks[col], c)
		}
	}
	return supply, nil
}

func isCrate(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// ParseProcedure reads "move <amount> from <from> to <to>" with 1-based stacks.
func ParseProcedure(line string) (Procedure, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Procedure{}, fmt.Errorf("malformed procedure %q", line)
	}

	nums := make([]int, 3)
	for i, idx := range []int{1, 3, 5} {
		n, err := strconv.Atoi(f[idx])
		if err != nil {
			return Procedure{}, fmt.Errorf("procedure %q: %w", line, err)
		}
		nums[i] = n
	}
	if nums[0] < 0 {
		return Procedure{}, fmt.Errorf("procedure %q: negative amount", line)
	}
	if nums[1] < 1 || nums[2] < 1 {
		return Procedure{}, fmt.Errorf("procedure %q: stacks are numbered from 1", line)
	}
	return Procedure{Amount: nums[0], From: nums[1] - 1, To: nums[2] - 1}, nil
}

// Parse splits the input into the drawing and the rearrangement procedure.
func Parse(input []byte) (Supply, []Procedure, error) {
	sections := puzzle.Sections(puzzle.NormalizeInput(input))
	if len(sections) < 2 {
		return Supply{}, nil, domain.InvalidInput("day05.parse", errors.New("failed to find procedure section"))
	}

	supply, err := ParseDrawing(sections[0])
	if err != nil {
		return Supply{}, nil, domain.InvalidInput("day05.parse", err)
	}

	drawingLines := strings.Count(sections[0], "\n") + 2
	var procedures []Procedure
	for i, line := range strings.Split(strings.Join(sections[1:], "\n\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParseProcedure(line)
		if err != nil {
			return Supply{}, nil, domain.InvalidInput("day05.parse", fmt.Errorf("line %d: %w", drawingLines+i+1, err))
		}
		procedures = append(procedures, p)
	}
	return supply, procedures, nil
}

func (s *Supply) stack(idx int) ([]byte, error) {
	if idx < 0 || idx >= len(s.Stacks) {
		return nil, fmt.Errorf("couldn't find column at index: %d", idx+1)
	}
	return s.Stacks[idx], nil
}

func (s *Supply) take(p Procedure) ([]byte, error) {
	from, err := s.stack(p.From)
	if err != nil {
		return nil, err
	}
	if _, err := s.stack(p.To); err != nil {
		return nil, err
	}
	if len(from) < p.Amount {
		return nil, fmt.Errorf("can't take out %d crates; only %d crates remain", p.Amount, len(from))
	}

	cut := len(from) - p.Amount
	crates := slices.Clone(from[cut:])
	s.Stacks[p.From] = from[:cut]
	return crates, nil
}

// Apply executes p with the given crane.
func (s *Supply) Apply(p Procedure, crane Crane) error {
	crates, err := s.take(p)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	if crane == CrateMover9000 {
		slices.Reverse(crates)
	}
	s.Stacks[p.To] = append(s.Stacks[p.To], crates...)
	return nil
}

// Tops returns the top crate of every stack, left to right.
func (s Supply) Tops() (string, error) {
	var b strings.Builder
	for i, st := range s.Stacks {
		if len(st) == 0 {
			return "", fmt.Errorf("column %d is empty", i+1)
		}
		b.WriteByte(st[len(st)-1])
	}
	return b.String(), nil
}

// Rearrange runs every procedure on a copy of supply and returns the top crates.
func Rearrange(supply Supply, procedures []Procedure, crane Crane) (string, error) {
	s := supply.Clone()
	for _, p := range procedures {
		if err := s.Apply(p, crane); err != nil {
			return "", domain.InvalidInput("day05.rearrange", err)
		}
	}
	tops, err := s.Tops()
	if err != nil {
		return "", domain.InvalidInput("day05.rearrange", err)
	}
	return tops, nil
}
