package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/usecase"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "validate [day...]",
		Short: "Parse puzzle inputs without solving them",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace, opts)
			if err != nil {
				return err
			}
			defer ws.close()

			uc := usecase.NewValidateInputs(ws.inputs, ws.catalog)
			if err := uc.Execute(cmd.Context(), days); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
