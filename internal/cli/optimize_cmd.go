package cli

import (
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/config"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(a *App) *cobra.Command {
	var src sourceFlags
	format := formatValue(a.Config.Output.Format)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Compute the study-hour allocation with the best weighted average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSource(a, src)
			if err != nil {
				return err
			}
			reportFieldProblems(cmd.ErrOrStderr(), loaded.Problems)

			req := app.NewOptimizeRequest(loaded.Activities, loaded.BudgetHours)
			req.Source = loaded.Label
			res, err := a.Plan.Optimize(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if string(format) == config.FormatJSON {
				data, err := formatter.FormatResultJSON(res, loaded.Activities)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				fmt.Fprint(out, formatter.FormatResult(res, loaded.Activities))
			}

			if !res.IsOptimal() {
				return errInvalidInput
			}
			return nil
		},
	}

	src.register(cmd.Flags())
	cmd.Flags().Var(&format, "format", "Output format: text or json")

	return cmd
}
