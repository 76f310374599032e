// Package cmd provides the root command and CLI setup for pikescope.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/adapter"
	"github.com/mouse-blink/pikescope/internal/config"
	"github.com/mouse-blink/pikescope/internal/controller"
	"github.com/mouse-blink/pikescope/internal/domain"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// version is set at build time with -ldflags.
var version = "dev"

var fsAdapter adapter.SourceFSAdapter
var indexStore adapter.IndexStore
var parseCache adapter.ParseCache
var settings = config.New(".")
var cfg config.Config
var logger = slog.Default()

// resolver and workflow are built from the loaded configuration unless a
// test has already replaced them.
var resolver domain.Resolver
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	indexStore = adapter.NewIndexStore()
	parseCache = adapter.NewMemoryParseCache()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pikescope",
		Short: "Include resolver and symbol table builder for Pike sources",
		Long: `Pikescope follows #include and inherit directives of Pike sources, builds the
merged table of top-level constants and functions visible in each file, and
reports include problems: malformed directives, missing files, cycles and
runaway include graphs.

Settings come from flags, PIKESCOPE_* environment variables and an optional
.pikescope.yaml in the working directory, in that order of precedence.

Paths passed to check and index follow Go-style patterns:
  - ./...          recursively scan current directory
  - ./lib/...      recursively scan lib directory
  - ./a ./b        scan multiple directories`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeyRoot, config.DefaultRoot, "workspace root; includes never resolve outside it")
	flags.Int(config.KeyMaxFiles, config.DefaultMaxFiles, "maximum number of files loaded while resolving one file")
	flags.StringSlice(config.KeyExt, config.DefaultExtensions, "source file extensions scanned by check and index")
	flags.IntP(config.KeyParallel, "p", config.DefaultParallel, "number of files resolved in parallel by check and index")
	flags.StringP(config.KeyFormat, "f", config.DefaultFormat, "output format: text, yaml or json")
	flags.BoolP(config.KeyVerbose, "v", false, "log debug output to stderr")
	flags.String(config.KeyIndexDir, config.DefaultIndexDir, "directory index files are written to and read from")

	return cmd
}

// setup loads the configuration and wires the collaborators for cmd.
func setup(cmd *cobra.Command) error {
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	loaded, err := config.Load(settings)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = cfg.Logger(cmd.ErrOrStderr())

	if resolver == nil {
		resolver = domain.NewLoader(fsAdapter,
			domain.WithParseCache(parseCache),
			domain.WithMaxFiles(cfg.MaxFiles),
			domain.WithLogger(logger),
		)
	}

	if workflow == nil {
		ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), controller.WithFormat(cfg.Format))
		workflow = domain.NewWorkflow(fsAdapter, indexStore, ui, resolver, logger)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func scanArgs(args []string) domain.ScanArgs {
	return domain.ScanArgs{
		Paths:      parsePaths(args),
		Root:       m.Path(cfg.Root),
		Extensions: cfg.Extensions,
		Threads:    cfg.Parallel,
	}
}

func resolveArgs(path string) domain.ResolveArgs {
	return domain.ResolveArgs{Path: m.Path(path), Root: m.Path(cfg.Root)}
}
