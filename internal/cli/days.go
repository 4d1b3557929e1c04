package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func daysCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "days",
		Short: "Inspect the solved days",
	}

	c.AddCommand(daysListCmd(opts))
	return c
}

func daysListCmd(opts *rootOptions) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List solved days and whether their input exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, opts)
			if err != nil {
				return err
			}
			defer ws.close()

			refs, err := ws.inputs.ListInputs(ws.catalog.Days())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				s, err := ws.catalog.Solver(r.Day)
				if err != nil {
					return err
				}
				rel, relErr := filepath.Rel(ws.root, r.Path)
				if relErr != nil {
					rel = r.Path
				}
				status := "missing"
				if r.Present {
					status = "ok"
				}
				fmt.Fprintf(out, "- day %-2d %-24s input: %s (%s)\n", r.Day, s.Info().Title, rel, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
