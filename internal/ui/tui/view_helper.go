package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/advent/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderRun(t Theme, run domain.RunResult) string {
	if len(run.Days) == 0 {
		return "(nothing solved)"
	}

	var b strings.Builder
	for i, d := range run.Days {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderDay(t, d))
	}
	return b.String()
}

func renderDay(t Theme, d domain.DayResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Day %d: %s", d.Info.Day, d.Info.Title))
	b.WriteString("\n")
	for _, p := range d.Parts {
		b.WriteString(t.Part.Render(domain.PartName(p.Part)))
		b.WriteString("  ")
		b.WriteString(clampString(p.Message, 120))
		b.WriteString("\n")
	}
	b.WriteString(t.Help.Render(fmt.Sprintf("solved in %s", d.Elapsed)))
	return b.String()
}
