package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/domain"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// indexCmd represents the index command.
var indexCmd = newIndexCmd()

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [paths...]",
		Short: "Write the resolved scope of source files to an index",
		Long: `Resolve every source file under the given paths (default ./...) and write one
YAML document per file into --index-dir. Use view to read the index back.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Index(domain.IndexArgs{ScanArgs: scanArgs(args), Output: m.Path(cfg.IndexDir)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
