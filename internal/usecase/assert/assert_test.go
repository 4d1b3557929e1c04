package assert

import (
	"strings"
	"testing"

	"github.com/aalvaropc/advent/internal/domain"
)

func TestAnswer_Pass(t *testing.T) {
	r := Answer(1, " 24000\n", domain.PartAnswer{Part: 1, Value: "24000"}, true)
	if !r.Passed {
		t.Fatalf("expected pass, got %+v", r)
	}
	if r.Name != "part 1" {
		t.Fatalf("unexpected name %q", r.Name)
	}
}

func TestAnswer_Mismatch(t *testing.T) {
	r := Answer(2, "MCD", domain.PartAnswer{Part: 2, Value: "CMZ"}, true)
	if r.Passed {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(r.Message, `expected "MCD", got "CMZ"`) {
		t.Fatalf("unexpected message %q", r.Message)
	}
}

func TestAnswer_NotComputed(t *testing.T) {
	r := Answer(2, "1", domain.PartAnswer{}, false)
	if r.Passed || !strings.Contains(r.Message, "not computed") {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestEvaluate_OrdersByPart(t *testing.T) {
	exp := domain.Expectation{Day: 4, Parts: map[int]string{2: "4", 1: "2", 3: "x"}}
	got := domain.DayResult{
		Info:  domain.NewPuzzleInfo(4, "Camp Cleanup"),
		Parts: []domain.PartAnswer{{Part: 1, Value: "2"}, {Part: 2, Value: "5"}},
	}

	res := Evaluate(exp, got)
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}
	if res[0].Name != "part 1" || !res[0].Passed {
		t.Fatalf("unexpected first result %+v", res[0])
	}
	if res[1].Name != "part 2" || res[1].Passed {
		t.Fatalf("unexpected second result %+v", res[1])
	}
	if res[2].Name != "part 3" || res[2].Passed {
		t.Fatalf("unexpected third result %+v", res[2])
	}
}

func TestEvaluate_NoExpectations(t *testing.T) {
	if res := Evaluate(domain.Expectation{Day: 1}, domain.DayResult{}); len(res) != 0 {
		t.Fatalf("expected no results, got %v", res)
	}
}
