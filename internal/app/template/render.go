package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderErr(errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderErr(errors.New("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderErr(fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// RenderAnswer fills the answer message from its template.
// Answers without a template fall back to their bare value.
func RenderAnswer(p domain.PartAnswer) (string, error) {
	if strings.TrimSpace(p.Template) == "" {
		return p.Value, nil
	}
	return RenderString(p.Template, p.Vars)
}

func renderErr(err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindExecution,
		Err:  err,
	}
}
