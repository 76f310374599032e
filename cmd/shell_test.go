package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/pikescope/internal/adapter"
	"github.com/mouse-blink/pikescope/internal/domain"
	domainmocks "github.com/mouse-blink/pikescope/internal/domain/mocks"
)

// scriptReader replays lines, then reports EOF.
type scriptReader struct {
	lines  []string
	closed bool
}

func (r *scriptReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}

	line := r.lines[0]
	r.lines = r.lines[1:]

	if line == "^C" {
		return "", readline.ErrInterrupt
	}

	return line, nil
}

func (r *scriptReader) Close() error {
	r.closed = true

	return nil
}

func runShell(t *testing.T, lines ...string) (string, *scriptReader, error) {
	t.Helper()

	cmd, out := newTestRoot(t, domainmocks.NewMockWorkflow(t), newShellCmd())

	fsys := fstest.MapFS{
		"main.pike": {Data: []byte("#include \"globals.h\"\n#include \"gone.h\"\nint helper() { }\n")},
		"globals.h": {Data: []byte("//! The answer\nconstant answer = 42;\nvoid helper() { }\n")},
	}
	resolver = domain.NewLoader(adapter.NewFSSourceReader(fsys, "/ws"))

	reader := &scriptReader{lines: lines}

	originalReader := newLineReader
	newLineReader = func(*cobra.Command) (lineReader, error) { return reader, nil }

	t.Cleanup(func() { newLineReader = originalReader })

	cmd.SetArgs([]string{"--root", "/ws", "shell", "/ws/main.pike"})
	err := cmd.Execute()

	return out.String(), reader, err
}

func TestShellCmd_Session(t *testing.T) {
	output, reader, err := runShell(t,
		"",
		"answer",
		"lookup helper",
		"^C",
		"answr",
		"diagnostics",
		"scope",
		"help",
		"reload",
		"exit",
		"never reached",
	)
	require.NoError(t, err)
	assert.True(t, reader.closed)
	assert.Equal(t, []string{"never reached"}, reader.lines)

	for _, want := range []string{
		"/ws/main.pike: 2 symbols from 2 files, 1 diagnostics",
		"constant answer",
		"  | The answer",
		"function helper",
		"shadows /ws/globals.h:3",
		"did you mean: answer",
		"PathNotFound",
		"TOTAL SYMBOLS",
		"lookup NAME",
	} {
		assert.Contains(t, output, want)
	}

	assert.Equal(t, 2, strings.Count(output, "2 symbols from 2 files"), "reload prints the summary again")
}

func TestShellCmd_EOF(t *testing.T) {
	_, reader, err := runShell(t)

	require.NoError(t, err)
	assert.True(t, reader.closed)
}

func TestShellCmd_UsageErrors(t *testing.T) {
	output, _, err := runShell(t, "lookup", "what is this", "quit")

	require.NoError(t, err)
	assert.Contains(t, output, "error: usage: lookup NAME")
	assert.Contains(t, output, `error: unknown command "what", type help`)
}

func TestShellCmd_ResolveError(t *testing.T) {
	cmd, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newShellCmd())
	resolver = domain.NewLoader(adapter.NewFSSourceReader(fstest.MapFS{}, "/ws"))

	originalReader := newLineReader
	newLineReader = func(*cobra.Command) (lineReader, error) { return &scriptReader{}, nil }

	t.Cleanup(func() { newLineReader = originalReader })

	cmd.SetArgs([]string{"--root", "/ws", "shell", "/ws/absent.pike"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve /ws/absent.pike")
}

func TestShellCmd_ReaderError(t *testing.T) {
	cmd, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newShellCmd())

	boom := errors.New("no tty")
	originalReader := newLineReader
	newLineReader = func(*cobra.Command) (lineReader, error) { return nil, boom }

	t.Cleanup(func() { newLineReader = originalReader })

	cmd.SetArgs([]string{"shell", "main.pike"})
	require.ErrorIs(t, cmd.Execute(), boom)
}
