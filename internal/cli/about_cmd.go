package cli

import (
	"fmt"

	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Describe what gradeplan computes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAbout())
			return nil
		},
	}
}
