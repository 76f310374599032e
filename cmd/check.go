package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report include problems of source files",
		Long: `Resolve every source file under the given paths (default ./...) and report
malformed directives, missing include targets, include cycles and files that
hit the include limit. Exits non-zero when anything is reported.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Check(domain.CheckArgs{ScanArgs: scanArgs(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
