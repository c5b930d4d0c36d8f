package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/importer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var src sourceFlags
	var save string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an activity table interactively and calculate the plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditorAndSave(cmd, app, src, save)
		},
	}

	src.register(cmd.Flags())
	cmd.Flags().StringVarP(&save, "save", "s", "", "Write the edited table to this JSON file on exit")

	return cmd
}

func runEditor(cmd *cobra.Command, app *App, src sourceFlags) error {
	return runEditorAndSave(cmd, app, src, "")
}

func runEditorAndSave(cmd *cobra.Command, app *App, src sourceFlags, save string) error {
	loaded, err := loadSource(app, src)
	if err != nil {
		return err
	}
	reportFieldProblems(cmd.ErrOrStderr(), loaded.Problems)

	run := app.RunEditor
	if run == nil {
		run = runEditorProgram
	}
	final, err := run(NewEditorModel(app.Plan, loaded))
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	out := cmd.OutOrStdout()
	if res := final.Result(); res != nil {
		fmt.Fprint(out, formatter.FormatResult(res, final.Activities()))
	}

	if save == "" {
		return nil
	}
	f, err := os.Create(save)
	if err != nil {
		return fmt.Errorf("saving %s: %w", save, err)
	}
	defer f.Close()
	if err := importer.WriteActivitySet(f, importer.FromActivities(final.Name(), final.BudgetHours(), final.Activities())); err != nil {
		return fmt.Errorf("saving %s: %w", save, err)
	}
	fmt.Fprintf(out, "%s Saved %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(save))
	return nil
}

func runEditorProgram(m EditorModel) (EditorModel, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	if em, ok := final.(EditorModel); ok {
		return em, nil
	}
	return m, nil
}
