package ports

import "github.com/aalvaropc/advent/internal/domain"

// AnswerBook loads the known answers used by `check`.
type AnswerBook interface {
	LoadAnswers() (domain.AnswerSet, error)
}
