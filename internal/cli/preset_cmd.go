package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/preset"
	"github.com/spf13/cobra"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List, show and export built-in activity sets",
	}

	cmd.AddCommand(
		newPresetListCmd(app),
		newPresetShowCmd(),
		newPresetExportCmd(),
	)

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresetList(preset.Names(), app.Config.Defaults.Preset))
			return nil
		},
	}
}

func newPresetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show NAME",
		Short:             "Show the activities of a preset",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePresetNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := preset.Get(args[0])
			if err != nil {
				return err
			}
			budget := domain.ValueOr(set.BudgetHours, 0)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivities(set.Name, budget, set.Activities))
			return nil
		},
	}
}

func newPresetExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:               "export NAME",
		Short:             "Write a preset as an activity-set JSON file",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePresetNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := preset.Raw(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default stdout)")

	return cmd
}

func completePresetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return preset.Names(), cobra.ShellCompDirectiveNoFileComp
}
