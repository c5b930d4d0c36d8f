package cli

import (
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/config"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *App) *cobra.Command {
	var src sourceFlags
	format := formatValue(a.Config.Output.Format)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an activity table without optimizing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSource(a, src)
			if err != nil {
				return err
			}

			report, err := a.Plan.Check(cmd.Context(), loaded.Activities)
			if err != nil {
				return err
			}
			// Clamped fields count as problems here, ahead of the engine's own.
			if !loaded.Problems.Empty() {
				report.Problems = append(loaded.Problems.Errors(), report.Problems...)
			}

			out := cmd.OutOrStdout()
			if string(format) == config.FormatJSON {
				data, err := formatter.FormatCheckReportJSON(report)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				fmt.Fprint(out, formatter.FormatCheckReport(report))
			}

			if len(report.Problems) > 0 {
				return errInvalidInput
			}
			return nil
		},
	}

	src.register(cmd.Flags())
	cmd.Flags().Var(&format, "format", "Output format: text or json")

	return cmd
}
