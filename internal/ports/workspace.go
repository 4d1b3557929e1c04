package ports

import "github.com/aalvaropc/advent/internal/domain"

// WorkspaceLocator finds the directory holding advent.yaml from anywhere below it.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// WorkspaceInitializer writes the skeleton described by spec: config files and
// one folder per day. Existing files survive unless force is set.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
