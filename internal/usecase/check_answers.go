package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
	ucassert "github.com/aalvaropc/advent/internal/usecase/assert"
)

type CheckAnswers struct {
	solve   *SolveDays
	answers ports.AnswerBook
	log     *slog.Logger
}

func NewCheckAnswers(solve *SolveDays, ab ports.AnswerBook, log *slog.Logger) *CheckAnswers {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &CheckAnswers{solve: solve, answers: ab, log: log}
}

// Execute solves the requested days and compares them with the answer book.
// Days without known answers pass with a single "skipped" assertion.
func (uc *CheckAnswers) Execute(ctx context.Context, days []int) ([]domain.CheckResult, error) {
	book, err := uc.answers.LoadAnswers()
	if err != nil {
		return nil, err
	}

	run, err := uc.solve.Execute(ctx, days)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CheckResult, 0, len(run.Days))
	for _, d := range run.Days {
		day := d.Info.Day
		exp, ok := book[day]
		if !ok || len(exp.Parts) == 0 {
			out = append(out, domain.CheckResult{
				Day: day,
				Assertions: []domain.AssertionResult{
					{Name: "answers", Passed: true, Message: "no expected answers, skipped"},
				},
			})
			continue
		}

		res := domain.CheckResult{Day: day, Assertions: ucassert.Evaluate(exp, d)}
		for _, a := range res.Assertions {
			if !a.Passed {
				uc.log.Warn("check.mismatch", "day", day, "assertion", a.Name, "message", a.Message)
			}
		}
		out = append(out, res)
	}
	return out, nil
}
