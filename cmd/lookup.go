package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/domain"
)

// lookupCmd represents the lookup command.
var lookupCmd = newLookupCmd()

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup FILE NAME",
		Short: "Show where a name used in a file is declared",
		Long: `Resolve FILE and show the declaration NAME refers to, its doc comment and
the declarations it shadows. Unknown names are reported with the closest
visible names.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Lookup(domain.LookupArgs{ResolveArgs: resolveArgs(args[0]), Name: args[1]})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
