package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var resolveStdinFlag bool

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Show every symbol visible in a file",
		Long: `Resolve the includes of FILE and show the merged scope: each visible constant
and function, where it is declared, and how many declarations it shadows.
On a terminal the scope opens in an interactive browser.

With --stdin the file content is read from standard input, which lets an
editor resolve an unsaved buffer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve := resolveArgs(args[0])

			if resolveStdinFlag {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}

				resolve.Content = content
			}

			return workflow.Resolve(resolve)
		},
	}
	cmd.Flags().BoolVar(&resolveStdinFlag, "stdin", false, "read the file content from standard input")

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
