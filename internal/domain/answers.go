package domain

// Expectation holds the known answers of one day, keyed by part number.
type Expectation struct {
	Day   int
	Parts map[int]string
}

// AnswerSet maps a day to its expected answers.
type AnswerSet map[int]Expectation
