// Package day01 solves "Calorie Counting": https://adventofcode.com/2022/day/1
package day01

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzle"
	"github.com/aalvaropc/advent/internal/xmath"
)

// Elf is one inventory group: the sum of the calories it carries.
type Elf struct {
	Calories uint64
}

// Parse reads blank-line separated groups of calorie counts.
func Parse(input []byte) ([]Elf, error) {
	text := puzzle.NormalizeInput(input)
	if strings.TrimSpace(text) == "" {
		return nil, domain.InvalidInput("day01.parse", errors.New("expected at least one elf"))
	}

	var elves []Elf
	lineNo := 0
	for _, section := range puzzle.Sections(text) {
		var calories []uint64
		for _, line := range strings.Split(section, "\n") {
			lineNo++
			v, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
			if err != nil {
				return nil, domain.InvalidInput("day01.parse", fmt.Errorf("line %d: %w", lineNo, err))
			}
			calories = append(calories, v)
		}
		lineNo++ // blank separator
		elves = append(elves, Elf{Calories: xmath.Sum(calories)})
	}
	return elves, nil
}

func totals(elves []Elf) []uint64 {
	out := make([]uint64, len(elves))
	for i, e := range elves {
		out[i] = e.Calories
	}
	return out
}

// MostCalories returns the 1-based position of the first elf carrying the most
// calories, and that total.
func MostCalories(elves []Elf) (position int, calories uint64, err error) {
	i := xmath.MaxIndex(totals(elves))
	if i < 0 {
		return 0, 0, domain.InvalidInput("day01.part_one", errors.New("expected at least one elf"))
	}
	return i + 1, elves[i].Calories, nil
}

// TopCalories sums the n largest totals.
func TopCalories(elves []Elf, n int) uint64 {
	return xmath.Sum(xmath.TopN(totals(elves), n))
}
