package yamlanswers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

// Loader reads expected answers from a YAML file:
//
//	answers:
//	  1: { part1: "24000", part2: "45000" }
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var _ ports.AnswerBook = (*Loader)(nil)

type yamlAnswers struct {
	Answers map[int]map[string]string `yaml:"answers"`
}

// LoadAnswers returns an empty set when the file does not exist.
// Blank values are treated as not yet known.
func (l *Loader) LoadAnswers() (domain.AnswerSet, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.AnswerSet{}, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlanswers.load",
			Kind: domain.KindExecution,
			Path: l.path,
			Err:  err,
		}
	}

	var y yamlAnswers
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlanswers.load",
			Kind: domain.KindInvalidConfig,
			Path: l.path,
			Err:  err,
		}
	}

	set, err := mapAndValidate(y)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlanswers.validate",
			Kind: domain.KindInvalidConfig,
			Path: l.path,
			Err:  err,
		}
	}
	return set, nil
}

func mapAndValidate(y yamlAnswers) (domain.AnswerSet, error) {
	days := make([]int, 0, len(y.Answers))
	for day := range y.Answers {
		days = append(days, day)
	}
	sort.Ints(days)

	set := domain.AnswerSet{}
	for _, day := range days {
		if day < 1 {
			return nil, fmt.Errorf("day %d must be positive", day)
		}

		parts := map[int]string{}
		for key, value := range y.Answers[day] {
			part, err := parsePartKey(key)
			if err != nil {
				return nil, fmt.Errorf("day %d: %w", day, err)
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			parts[part] = value
		}
		if len(parts) == 0 {
			continue
		}
		set[day] = domain.Expectation{Day: day, Parts: parts}
	}
	return set, nil
}

func parsePartKey(key string) (int, error) {
	raw, ok := strings.CutPrefix(key, "part")
	if !ok {
		return 0, fmt.Errorf("unknown key %q (expected part1 or part2)", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 2 {
		return 0, fmt.Errorf("unknown key %q (expected part1 or part2)", key)
	}
	return n, nil
}
