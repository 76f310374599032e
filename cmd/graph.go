package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/domain"
)

var graphOutputFlag string

// graphCmd represents the graph command.
var graphCmd = newGraphCmd()

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Export the include graph of a file as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph := domain.GraphArgs{ResolveArgs: resolveArgs(args[0]), Output: cmd.OutOrStdout()}

			if graphOutputFlag != "" {
				f, err := os.Create(graphOutputFlag)
				if err != nil {
					return fmt.Errorf("create %s: %w", graphOutputFlag, err)
				}

				defer func() {
					_ = f.Close()
				}()

				graph.Output = f
			}

			return workflow.Graph(graph)
		},
	}
	cmd.Flags().StringVarP(&graphOutputFlag, "output", "o", "", "write the graph to a file instead of stdout")

	return cmd
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
