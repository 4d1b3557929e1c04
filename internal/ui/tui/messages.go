package tui

import "github.com/aalvaropc/advent/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type solveDoneMsg struct {
	run domain.RunResult
	err error
}
