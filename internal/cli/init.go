package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/infra/fsworkspace"
	"github.com/aalvaropc/advent/internal/infra/workspacefinder"
	"github.com/aalvaropc/advent/internal/puzzle/all"
	"github.com/aalvaropc/advent/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create advent.yaml, answers.yaml and the day folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			// An existing advent.yaml decides where the day folders go.
			cfg, err := workspacefinder.LoadConfig(root)
			if err != nil {
				return err
			}

			initializer := fsworkspace.NewInitializer(
				fsworkspace.WithInputsDir(cfg.Paths.InputsDir),
				fsworkspace.WithInputFile(cfg.Paths.InputFile),
			)
			uc := usecase.NewInitWorkspace(initializer, all.Registry())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite advent.yaml and answers.yaml")
	return c
}
