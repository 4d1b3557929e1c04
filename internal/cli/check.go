package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/usecase"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "check [day...]",
		Short: "Solve days and compare with the answers file",
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

			uc := usecase.NewCheckAnswers(ws.solver(), ws.answers, ws.log)
			results, err := uc.Execute(cmd.Context(), days)
			if err != nil {
				return err
			}

			fails := printChecks(cmd.OutOrStdout(), results)
			if fails > 0 {
				return fmt.Errorf("check failed (%d failed assertion(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

// printChecks writes one line per assertion and returns the number of failures.
func printChecks(w io.Writer, results []domain.CheckResult) int {
	pass, fail := 0, 0
	for _, r := range results {
		for _, a := range r.Assertions {
			mark := "✓"
			if a.Passed {
				pass++
			} else {
				mark = "✗"
				fail++
			}
			fmt.Fprintf(w, "%s day %d %s — %s\n", mark, r.Day, a.Name, a.Message)
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", pass, fail)
	return fail
}
