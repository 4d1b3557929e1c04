package domain

import "time"

// RunResult holds every day solved in one invocation, in ascending day order.
type RunResult struct {
	StartedAt time.Time   `json:"started_at"`
	EndedAt   time.Time   `json:"ended_at"`
	Days      []DayResult `json:"days"`
}

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string
	Passed  bool
	Message string
}

// CheckResult groups the assertions evaluated for one day.
type CheckResult struct {
	Day        int
	Assertions []AssertionResult
}

// Failed reports whether any assertion of the day failed.
func (c CheckResult) Failed() bool {
	for _, a := range c.Assertions {
		if !a.Passed {
			return true
		}
	}
	return false
}
