package tui

import (
	"log/slog"

	"github.com/aalvaropc/advent/internal/ports"
)

// InitWorkspaceUC creates the workspace skeleton at a root.
type InitWorkspaceUC interface {
	Execute(root string, force bool) error
}

type Deps struct {
	WorkspaceLocator ports.WorkspaceLocator
	InitWorkspaceUC  InitWorkspaceUC
	Catalog          ports.SolverCatalog

	Logger *slog.Logger
	Debug  bool
}
