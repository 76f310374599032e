package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/domain"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [dir]",
		Short: "View a previously written index",
		Long:  "View the index written by the index command, from dir or --index-dir.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := cfg.IndexDir
			if len(args) == 1 {
				dir = args[0]
			}

			return workflow.View(domain.ViewArgs{Index: m.Path(dir)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
