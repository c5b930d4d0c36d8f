package cli

import (
	"github.com/alexanderramin/gradeplan/internal/config"
	"github.com/alexanderramin/gradeplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by every command.
type App struct {
	Plan   service.PlanService
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. When true and no
	// subcommand is given, the editor opens.
	IsInteractive func() bool

	// RunEditor runs the editor program. Tests replace it to avoid a real
	// terminal.
	RunEditor func(m EditorModel) (EditorModel, error)
}

// NewRootCmd creates the top-level "gradeplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gradeplan",
		Short:         "Plan weekly study hours for the best weighted average",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runEditor(cmd, app, sourceFlags{})
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newOptimizeCmd(app),
		newCheckCmd(app),
		newPresetCmd(app),
		newSchemaCmd(),
		newEditCmd(app),
		newAboutCmd(),
	)

	return root
}
