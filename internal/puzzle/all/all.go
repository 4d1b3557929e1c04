// Package all wires every implemented day into a registry.
package all

import (
	"github.com/aalvaropc/advent/internal/puzzle"
	"github.com/aalvaropc/advent/internal/puzzle/day01"
	"github.com/aalvaropc/advent/internal/puzzle/day02"
	"github.com/aalvaropc/advent/internal/puzzle/day03"
	"github.com/aalvaropc/advent/internal/puzzle/day04"
	"github.com/aalvaropc/advent/internal/puzzle/day05"
)

var (
	_ puzzle.Solver = day01.Solver{}
	_ puzzle.Solver = day02.Solver{}
	_ puzzle.Solver = day03.Solver{}
	_ puzzle.Solver = day04.Solver{}
	_ puzzle.Solver = day05.Solver{}
)

// Registry returns a registry holding every solved day.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(
		day01.Solver{},
		day02.Solver{},
		day03.Solver{},
		day04.Solver{},
		day05.Solver{},
	)
}
