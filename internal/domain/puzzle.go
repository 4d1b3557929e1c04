package domain

import (
	"fmt"
	"time"
)

// Vars holds named values substituted into answer message templates.
type Vars map[string]string

// PuzzleInfo identifies a single daily puzzle.
type PuzzleInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewPuzzleInfo builds the info of a 2022 puzzle.
func NewPuzzleInfo(day int, title string) PuzzleInfo {
	return PuzzleInfo{
		Day:   day,
		Title: title,
		URL:   fmt.Sprintf("https://adventofcode.com/2022/day/%d", day),
	}
}

// PartAnswer is the outcome of one puzzle part.
type PartAnswer struct {
	Part     int    `json:"part"`
	Value    string `json:"value"`
	Template string `json:"-"`
	Vars     Vars   `json:"vars,omitempty"`
	Message  string `json:"message"`
}

// PartName returns the heading used when printing a part ("Part One").
func PartName(part int) string {
	switch part {
	case 1:
		return "Part One"
	case 2:
		return "Part Two"
	default:
		return fmt.Sprintf("Part %d", part)
	}
}

// DayResult represents the answers computed for a single day.
type DayResult struct {
	Info      PuzzleInfo    `json:"info"`
	InputPath string        `json:"input_path"`
	Parts     []PartAnswer  `json:"parts"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Part returns the answer for the given part, if computed.
func (r DayResult) Part(part int) (PartAnswer, bool) {
	for _, p := range r.Parts {
		if p.Part == part {
			return p, true
		}
	}
	return PartAnswer{}, false
}

// InputRef points at a puzzle input discovered on disk.
type InputRef struct {
	Day     int
	Path    string
	Present bool
}

// WorkspaceSpec describes where a workspace lives.
type WorkspaceSpec struct {
	Root string
	Days []int
}
