package fsinput

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

// Loader reads puzzle inputs laid out as <root>/<inputsDir>/day-<N>/<inputFile>.
type Loader struct {
	root      string
	inputsDir string
	inputFile string
}

type Option func(*Loader)

func WithInputsDir(dir string) Option {
	return func(l *Loader) { l.inputsDir = dir }
}

func WithInputFile(name string) Option {
	return func(l *Loader) { l.inputFile = name }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		root:      root,
		inputsDir: "days",
		inputFile: filepath.Join("resources", "input"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.InputLoader = (*Loader)(nil)

// Path returns where the input of day is expected.
func (l *Loader) Path(day int) string {
	return filepath.Join(l.root, l.inputsDir, fmt.Sprintf("day-%d", day), l.inputFile)
}

func (l *Loader) LoadInput(day int) ([]byte, string, error) {
	if day < 1 {
		return nil, "", domain.InvalidInput("fsinput.load", fmt.Errorf("day must be positive, got %d", day))
	}
	path := l.Path(day)
	b, err := l.LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return b, path, nil
}

func (l *Loader) LoadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		return b, nil
	}

	kind := domain.KindExecution
	if errors.Is(err, fs.ErrNotExist) {
		kind = domain.KindNotFound
	}
	return nil, &domain.OpError{
		Op:   "fsinput.load",
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

func (l *Loader) ListInputs(days []int) ([]domain.InputRef, error) {
	refs := make([]domain.InputRef, 0, len(days))
	for _, day := range days {
		path := l.Path(day)
		info, err := os.Stat(path)
		switch {
		case err == nil:
			refs = append(refs, domain.InputRef{Day: day, Path: path, Present: !info.IsDir()})
		case errors.Is(err, fs.ErrNotExist):
			refs = append(refs, domain.InputRef{Day: day, Path: path})
		default:
			return nil, &domain.OpError{
				Op:   "fsinput.list",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
	}
	return refs, nil
}
