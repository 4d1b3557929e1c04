package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/infra/fsworkspace"
	"github.com/aalvaropc/advent/internal/infra/logger"
	"github.com/aalvaropc/advent/internal/infra/workspacefinder"
	"github.com/aalvaropc/advent/internal/puzzle/all"
	"github.com/aalvaropc/advent/internal/ui/tui"
	"github.com/aalvaropc/advent/internal/usecase"
)

type rootOptions struct {
	debug bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "advent",
		Short:        "Advent of Code 2022 solutions with a TUI day picker",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, err := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: opts.debug,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
			}
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			catalog := all.Registry()
			deps := tui.Deps{
				WorkspaceLocator: finder,
				InitWorkspaceUC:  usecase.NewInitWorkspace(fsworkspace.NewInitializer(), catalog),
				Catalog:          catalog,
				Logger:           logger.L(),
				Debug:            opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .advent/logs/advent.log")

	cmd.AddCommand(
		solveCmd(opts),
		checkCmd(opts),
		validateCmd(opts),
		daysCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
