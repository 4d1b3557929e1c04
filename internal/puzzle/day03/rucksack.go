// Package day03 solves "Rucksack Reorganization": https://adventofcode.com/2022/day/3
package day03

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzle"
)

// GroupSize is the number of rucksacks sharing one badge.
const GroupSize = 3

// ItemSet is a set of item types; bit n is set for the item of priority n.
type ItemSet uint64

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, fmt.Errorf("unsupported item %q", item)
	}
}

// NewItemSet collects the item types in s.
func NewItemSet(s string) (ItemSet, error) {
	var set ItemSet
	for i := 0; i < len(s); i++ {
		p, err := Priority(s[i])
		if err != nil {
			return 0, err
		}
		set |= 1 << p
	}
	return set, nil
}

// Single returns the priority of the only item in the set.
func (s ItemSet) Single() (int, error) {
	switch bits.OnesCount64(uint64(s)) {
	case 1:
		return bits.TrailingZeros64(uint64(s)), nil
	case 0:
		return 0, errors.New("no common item")
	default:
		return 0, fmt.Errorf("%d common items, expected one", bits.OnesCount64(uint64(s)))
	}
}

// Parse returns one rucksack per line and checks every item is a letter.
func Parse(input []byte) ([]string, error) {
	text := puzzle.NormalizeInput(input)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if _, err := NewItemSet(line); err != nil {
			return nil, domain.InvalidInput("day03.parse", fmt.Errorf("line %d: %w", i+1, err))
		}
	}
	return lines, nil
}

// MisplacedPriority sums, per rucksack, the priority of the item found in both compartments.
func MisplacedPriority(rucksacks []string) (int, error) {
	total := 0
	for i, r := range rucksacks {
		if len(r)%2 != 0 {
			return 0, domain.InvalidInput("day03.part_one", fmt.Errorf("line %d: odd number of items (%d)", i+1, len(r)))
		}
		left, err := NewItemSet(r[:len(r)/2])
		if err != nil {
			return 0, domain.InvalidInput("day03.part_one", fmt.Errorf("line %d: %w", i+1, err))
		}
		right, err := NewItemSet(r[len(r)/2:])
		if err != nil {
			return 0, domain.InvalidInput("day03.part_one", fmt.Errorf("line %d: %w", i+1, err))
		}
		p, err := (left & right).Single()
		if err != nil {
			return 0, domain.InvalidInput("day03.part_one", fmt.Errorf("line %d: %w", i+1, err))
		}
		total += p
	}
	return total, nil
}

// BadgePriority sums the priority of the badge shared by each group of three rucksacks.
func BadgePriority(rucksacks []string) (int, error) {
	if len(rucksacks)%GroupSize != 0 {
		return 0, domain.InvalidInput("day03.part_two",
			fmt.Errorf("%d rucksacks cannot be split into groups of %d", len(rucksacks), GroupSize))
	}

	total := 0
	for start := 0; start < len(rucksacks); start += GroupSize {
		common := ^ItemSet(0)
		for _, r := range rucksacks[start : start+GroupSize] {
			set, err := NewItemSet(r)
			if err != nil {
				return 0, domain.InvalidInput("day03.part_two", err)
			}
			common &= set
		}
		p, err := common.Single()
		if err != nil {
			return 0, domain.InvalidInput("day03.part_two", fmt.Errorf("group starting at line %d: %w", start+1, err))
		}
		total += p
	}
	return total, nil
}
