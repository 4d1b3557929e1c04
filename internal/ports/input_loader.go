package ports

import "github.com/aalvaropc/advent/internal/domain"

// InputLoader loads puzzle inputs from a source (e.g., filesystem).
type InputLoader interface {
	LoadInput(day int) (data []byte, path string, err error)
	LoadFile(path string) ([]byte, error)
	ListInputs(days []int) ([]domain.InputRef, error)
}
