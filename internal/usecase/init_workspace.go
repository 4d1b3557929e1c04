package usecase

import (
	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	catalog     ports.SolverCatalog
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, catalog ports.SolverCatalog) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, catalog: catalog}
}

// Execute lays out a workspace with an input directory per registered day.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	var days []int
	if uc.catalog != nil {
		days = uc.catalog.Days()
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, Days: days}, force)
}
