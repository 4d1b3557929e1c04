// Package day04 solves "Camp Cleanup": https://adventofcode.com/2022/day/4
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzle"
)

// SectionRange is an inclusive range of section IDs.
type SectionRange struct {
	Lower uint
	Upper uint
}

func NewSectionRange(lower, upper uint) (SectionRange, error) {
	if lower > upper {
		return SectionRange{}, fmt.Errorf("lower can't be bigger than upper in section range: %d > %d", lower, upper)
	}
	return SectionRange{Lower: lower, Upper: upper}, nil
}

// ParseSectionRange reads "a-b".
func ParseSectionRange(s string) (SectionRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return SectionRange{}, fmt.Errorf("failed to parse range: %q", s)
	}
	lower, err := strconv.ParseUint(lo, 10, 0)
	if err != nil {
		return SectionRange{}, fmt.Errorf("range %q: %w", s, err)
	}
	upper, err := strconv.ParseUint(hi, 10, 0)
	if err != nil {
		return SectionRange{}, fmt.Errorf("range %q: %w", s, err)
	}
	return NewSectionRange(uint(lower), uint(upper))
}

func (r SectionRange) String() string {
	return fmt.Sprintf("%d-%d", r.Lower, r.Upper)
}

// Has reports whether id lies within r.
func (r SectionRange) Has(id uint) bool {
	return id >= r.Lower && id <= r.Upper
}

// Contains reports whether other lies entirely within r.
func (r SectionRange) Contains(other SectionRange) bool {
	return other.Lower >= r.Lower && other.Upper <= r.Upper
}

// Overlaps reports whether r and other share at least one section.
func (r SectionRange) Overlaps(other SectionRange) bool {
	return r.Lower <= other.Upper && other.Lower <= r.Upper
}

// Pair is the assignment of two elves.
type Pair struct {
	First  SectionRange
	Second SectionRange
}

// Parse reads one "a-b,c-d" pair per line.
func Parse(input []byte) ([]Pair, error) {
	text := puzzle.NormalizeInput(input)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	pairs := make([]Pair, 0, len(lines))
	for i, line := range lines {
		a, b, ok := strings.Cut(line, ",")
		if !ok {
			return nil, domain.InvalidInput("day04.parse", fmt.Errorf("line %d: failed to split section ranges: %q", i+1, line))
		}
		first, err := ParseSectionRange(a)
		if err != nil {
			return nil, domain.InvalidInput("day04.parse", fmt.Errorf("line %d: %w", i+1, err))
		}
		second, err := ParseSectionRange(b)
		if err != nil {
			return nil, domain.InvalidInput("day04.parse", fmt.Errorf("line %d: %w", i+1, err))
		}
		pairs = append(pairs, Pair{First: first, Second: second})
	}
	return pairs, nil
}

// CountContained counts pairs where one range fully contains the other.
func CountContained(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.First.Contains(p.Second) || p.Second.Contains(p.First) {
			n++
		}
	}
	return n
}

// CountOverlapping counts pairs whose ranges overlap.
func CountOverlapping(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.First.Overlaps(p.Second) {
			n++
		}
	}
	return n
}
