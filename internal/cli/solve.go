package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/usecase/query"
)

func solveCmd(opts *rootOptions) *cobra.Command {
	var workspace string
	var input string
	var format string
	var expr string

	c := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve one or more days (all days when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if input != "" && len(days) != 1 {
				return fmt.Errorf("--input requires exactly one day, got %d", len(days))
			}

			ws, err := loadWorkspace(workspace, opts)
			if err != nil {
				return err
			}
			defer ws.close()

			if format == "" {
				format = ws.cfg.Defaults.Format
			}

			uc := ws.solver()

			var run domain.RunResult
			if input != "" {
				p, absErr := filepath.Abs(input)
				if absErr != nil {
					return fmt.Errorf("invalid input path: %w", absErr)
				}
				run, err = uc.ExecuteInput(cmd.Context(), days[0], p)
			} else {
				run, err = uc.Execute(cmd.Context(), days)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if strings.TrimSpace(expr) != "" {
				v, err := query.Select(run, expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			}
			return printRun(out, run, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&input, "input", "", "Solve against this input file instead of the workspace input (one day only)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to advent.yaml)")
	c.Flags().StringVar(&expr, "query", "", "JSONPath expression evaluated over the JSON result, e.g. $.days[0].parts[1].value")
	return c
}

func printRun(w io.Writer, run domain.RunResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	case "pretty", "":
		printPrettyRun(w, run)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult) {
	for i, d := range run.Days {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Day %d: %s\n", d.Info.Day, d.Info.Title)
		for j, p := range d.Parts {
			if j > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "=== %s ===\n", domain.PartName(p.Part))
			fmt.Fprintln(w, p.Message)
		}
	}
}
