package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/infra/fsinput"
	"github.com/aalvaropc/advent/internal/infra/logger"
	"github.com/aalvaropc/advent/internal/infra/workspacefinder"
	"github.com/aalvaropc/advent/internal/infra/yamlanswers"
	"github.com/aalvaropc/advent/internal/ports"
	"github.com/aalvaropc/advent/internal/puzzle"
	"github.com/aalvaropc/advent/internal/puzzle/all"
	"github.com/aalvaropc/advent/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	inputs  *fsinput.Loader
	answers ports.AnswerBook
	catalog *puzzle.Registry

	log     *slog.Logger
	cleanup func() error
}

// loadWorkspace resolves the root, loads advent.yaml and wires the adapters.
// Logging is only enabled with --debug.
func loadWorkspace(workspaceFlag string, opts *rootOptions) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root: root,
		cfg:  cfg,
		inputs: fsinput.NewLoader(
			root,
			fsinput.WithInputsDir(cfg.Paths.InputsDir),
			fsinput.WithInputFile(cfg.Paths.InputFile),
		),
		answers: yamlanswers.NewLoader(resolveAgainst(root, cfg.Paths.AnswersFile)),
		catalog: all.Registry(),
		log:     logger.L(),
		cleanup: func() error { return nil },
	}

	if opts != nil && opts.debug {
		cleanup, err := logger.Setup(logger.Config{Root: root, Debug: true})
		if err != nil {
			return nil, err
		}
		ws.cleanup = cleanup
		ws.log = logger.L()
	}

	return ws, nil
}

func (ws *workspaceCtx) close() {
	if ws != nil && ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

func (ws *workspaceCtx) solver() *usecase.SolveDays {
	return usecase.NewSolveDays(ws.inputs, ws.catalog,
		usecase.WithParallel(ws.cfg.Defaults.Parallel),
		usecase.WithLogger(ws.log),
	)
}

// resolveWorkspaceRoot uses the flag when given, otherwise walks up to advent.yaml.
// Without advent.yaml the working directory is the root.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().RootOr(wd)
}

func resolveAgainst(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
