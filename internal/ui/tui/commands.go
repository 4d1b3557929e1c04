package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/advent/internal/infra/fsinput"
	"github.com/aalvaropc/advent/internal/infra/workspacefinder"
	"github.com/aalvaropc/advent/internal/ports"
	"github.com/aalvaropc/advent/internal/usecase"
)

const solveTimeout = 2 * time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.InitWorkspaceUC == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("InitWorkspaceUC is nil")}
		}

		err := deps.InitWorkspaceUC.Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func listenSolver(ch <-chan solveDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return solveDoneMsg{err: errors.New("solver channel closed")}
		}
		return msg
	}
}

// startSolveAsync solves days in a goroutine; the result arrives as a solveDoneMsg.
func startSolveAsync(
	root string,
	catalog ports.SolverCatalog,
	days []int,
	log *slog.Logger,
	debug bool,
) (chan solveDoneMsg, tea.Cmd) {
	ch := make(chan solveDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("tui.solve.start", "workspace", root, "days", days, "debug", debug)

		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			log.Error("tui.solve.load_config.failed", "err", err)
			ch <- solveDoneMsg{err: err}
			return
		}

		inputs := fsinput.NewLoader(
			root,
			fsinput.WithInputsDir(cfg.Paths.InputsDir),
			fsinput.WithInputFile(cfg.Paths.InputFile),
		)
		uc := usecase.NewSolveDays(inputs, catalog,
			usecase.WithParallel(cfg.Defaults.Parallel),
			usecase.WithLogger(log),
		)

		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()

		run, execErr := uc.Execute(ctx, days)
		if execErr != nil {
			log.Error("tui.solve.failed", "err", execErr)
		} else if debug {
			for _, d := range run.Days {
				log.Debug("tui.solve.day", "day", d.Info.Day, "elapsed", d.Elapsed.String())
			}
		}

		ch <- solveDoneMsg{run: run, err: execErr}
	}()

	return ch, listenSolver(ch)
}
