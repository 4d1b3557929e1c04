package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/advent/internal/domain"
)

// Select evaluates a JSONPath expression against the JSON form of run.
//
// Policy:
// - Scalars are returned bare ("CMZ", "24000").
// - A single-element array is unwrapped.
// - Anything else is returned as compact JSON.
func Select(run domain.RunResult, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", queryErr(errors.New("empty jsonpath expression"))
	}

	doc, err := toDocument(run)
	if err != nil {
		return "", &domain.OpError{Op: "query.encode", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", queryErr(fmt.Errorf("%s: %w", expr, err))
	}
	if isEmptyValue(val) {
		return "", queryErr(fmt.Errorf("%s: no value found", expr))
	}

	return toString(val)
}

func toDocument(run domain.RunResult) (any, error) {
	b, err := json.Marshal(run)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		// JSON numbers decode as float64; answers are integers.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), nil
		}
		return fmt.Sprint(t), nil
	case bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func queryErr(err error) error {
	return &domain.OpError{
		Op:   "query.select",
		Kind: domain.KindInvalidInput,
		Err:  err,
	}
}
