package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "advent.yaml"

// Finder walks up from a directory looking for ConfigFile.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns the nearest directory at or above startDir holding the config file.
// A file path starts the search from its directory.
func (f *Finder) FindRoot(startDir string) (string, error) {
	start, err := startPoint(startDir)
	if err != nil {
		return "", err
	}

	for cur := start; ; {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: start,
				Err:  errors.New(f.ConfigFile + " not found in any parent directory"),
			}
		}
		cur = parent
	}
}

// RootOr is FindRoot, except that it answers startDir itself when no config
// file exists above it.
func (f *Finder) RootOr(startDir string) (string, error) {
	root, err := f.FindRoot(startDir)
	if err == nil {
		return root, nil
	}
	if domain.IsKind(err, domain.KindNotFound) {
		return startPoint(startDir)
	}
	return "", err
}

func startPoint(dir string) (string, error) {
	if dir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}
