package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/pikescope/internal/controller"
	"github.com/mouse-blink/pikescope/internal/domain"
	m "github.com/mouse-blink/pikescope/internal/model"
)

const shellPrompt = "pikescope> "

const shellHelp = `commands:
  NAME               show the declaration of NAME
  lookup NAME        same as NAME
  scope              list every visible symbol
  diagnostics        list include problems
  reload             resolve the file again
  help               show this help
  exit, quit         leave the shell
`

// lineReader is the part of readline the shell uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// newLineReader is replaced in tests.
var newLineReader = func(_ *cobra.Command) (lineReader, error) {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".pikescope_history")
	}

	return readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// shellCmd represents the shell command.
var shellCmd = newShellCmd()

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell FILE",
		Short: "Query the scope of a file interactively",
		Long: `Resolve FILE once and read queries from an interactive prompt. Type a name to
see its declaration, or help for the list of commands. Use reload after
editing the file or its includes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := newLineReader(cmd)
			if err != nil {
				return fmt.Errorf("start shell: %w", err)
			}

			defer func() {
				_ = rl.Close()
			}()

			sh := &shell{
				args: resolveArgs(args[0]),
				ui:   controller.NewSimpleUI(cmd, cfg.Format),
				out:  cmd.OutOrStdout(),
			}

			if err := sh.reload(); err != nil {
				return err
			}

			return sh.loop(rl)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

type shell struct {
	args domain.ResolveArgs
	ui   controller.UI
	out  io.Writer
	res  m.Resolution
}

func (s *shell) reload() error {
	res, err := resolver.Resolve(domain.Request{Path: s.args.Path, Root: s.args.Root})
	if err != nil {
		return fmt.Errorf("resolve %s: %w", s.args.Path, err)
	}

	s.res = res

	_, _ = fmt.Fprintf(s.out, "%s: %d symbols from %d files, %d diagnostics\n",
		res.File.Path, res.Scope.Len(), len(res.Loaded), len(res.Diagnostics))

	return nil
}

func (s *shell) loop(rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		done, err := s.exec(strings.Fields(line))
		if err != nil {
			_, _ = fmt.Fprintf(s.out, "error: %v\n", err)
		}

		if done {
			return nil
		}
	}
}

// exec runs one shell command and reports whether the shell should exit.
func (s *shell) exec(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "exit", "quit":
		return true, nil
	case "help":
		_, _ = fmt.Fprint(s.out, shellHelp)

		return false, nil
	case "scope":
		return false, s.ui.DisplayScope(s.res)
	case "diagnostics":
		return false, s.ui.DisplayDiagnostics([]m.Resolution{s.res})
	case "reload":
		return false, s.reload()
	case "lookup":
		if len(fields) != 2 {
			return false, errors.New("usage: lookup NAME")
		}

		return false, s.lookup(fields[1])
	}

	if len(fields) != 1 {
		return false, fmt.Errorf("unknown command %q, type help", fields[0])
	}

	return false, s.lookup(fields[0])
}

func (s *shell) lookup(name string) error {
	sym, diag := domain.LookupSymbol(s.res, name)
	if diag != nil {
		return s.ui.DisplayUnresolved(diag)
	}

	return s.ui.DisplaySymbol(sym, s.res.Scope.Shadowed(name))
}
