package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
)

// parseDays accepts "1", "05" or "day5". Unknown days are reported later by the registry.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := parseDay(a)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func parseDay(arg string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	if rest, ok := strings.CutPrefix(s, "day"); ok {
		s = strings.TrimPrefix(rest, "-")
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, domain.InvalidInput("cli.days", fmt.Errorf("invalid day %q (expected e.g. 1, 05 or day5)", arg))
	}
	return n, nil
}
