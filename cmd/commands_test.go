package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/pikescope/internal/config"
	"github.com/mouse-blink/pikescope/internal/domain"
	domainmocks "github.com/mouse-blink/pikescope/internal/domain/mocks"
	m "github.com/mouse-blink/pikescope/internal/model"
)

func TestResolveCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newResolveCmd())

	mockWorkflow.On("Resolve", domain.ResolveArgs{Path: "main.pike", Root: m.Path(config.DefaultRoot)}).Return(nil)

	cmd.SetArgs([]string{"resolve", "main.pike"})
	require.NoError(t, cmd.Execute())
}

func TestResolveCmd_Stdin(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newResolveCmd())
	cmd.SetIn(strings.NewReader("constant unsaved = 1;\n"))

	t.Cleanup(func() { resolveStdinFlag = false })

	mockWorkflow.On("Resolve", mock.MatchedBy(func(args domain.ResolveArgs) bool {
		return string(args.Content) == "constant unsaved = 1;\n"
	})).Return(nil)

	cmd.SetArgs([]string{"resolve", "--stdin", "main.pike"})
	require.NoError(t, cmd.Execute())
}

func TestResolveCmd_RequiresFile(t *testing.T) {
	cmd, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newResolveCmd())

	cmd.SetArgs([]string{"resolve"})
	require.Error(t, cmd.Execute())
}

func TestCheckCmd_DefaultPaths(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newCheckCmd())

	mockWorkflow.On("Check", mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == "./..." && args.Threads == config.DefaultParallel
	})).Return(nil)

	cmd.SetArgs([]string{"check"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_DiagnosticsFail(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newCheckCmd())

	mockWorkflow.On("Check", mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Paths) == 2 && args.Paths[0] == "./a" && args.Paths[1] == "./b/..."
	})).Return(domain.ErrDiagnosticsFound)

	cmd.SetArgs([]string{"check", "./a", "./b/..."})
	require.ErrorIs(t, cmd.Execute(), domain.ErrDiagnosticsFound)
}

func TestLookupCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newLookupCmd())

	mockWorkflow.On("Lookup", domain.LookupArgs{
		ResolveArgs: domain.ResolveArgs{Path: "main.pike", Root: "/ws"},
		Name:        "global_function",
	}).Return(nil)

	cmd.SetArgs([]string{"--root", "/ws", "lookup", "main.pike", "global_function"})
	require.NoError(t, cmd.Execute())
}

func TestLookupCmd_ArgCount(t *testing.T) {
	cmd, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newLookupCmd())

	cmd.SetArgs([]string{"lookup", "main.pike"})
	require.Error(t, cmd.Execute())
}

func TestGraphCmd(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd, out := newTestRoot(t, mockWorkflow, newGraphCmd())

		mockWorkflow.On("Graph", mock.MatchedBy(func(args domain.GraphArgs) bool {
			return args.Path == "main.pike" && args.Output == out
		})).Return(nil)

		cmd.SetArgs([]string{"graph", "main.pike"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("file", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd, _ := newTestRoot(t, mockWorkflow, newGraphCmd())

		t.Cleanup(func() { graphOutputFlag = "" })

		target := filepath.Join(t.TempDir(), "graph.dot")

		mockWorkflow.On("Graph", mock.Anything).Run(func(args mock.Arguments) {
			graph := args.Get(0).(domain.GraphArgs)
			_, _ = graph.Output.Write([]byte("digraph {}\n"))
		}).Return(nil)

		cmd.SetArgs([]string{"graph", "-o", target, "main.pike"})
		require.NoError(t, cmd.Execute())

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "digraph {}\n", string(data))
	})
}

func TestIndexCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newIndexCmd())

	mockWorkflow.On("Index", mock.MatchedBy(func(args domain.IndexArgs) bool {
		return args.Output == "./idx" && len(args.Paths) == 1 && args.Paths[0] == "./lib/..."
	})).Return(nil)

	cmd.SetArgs([]string{"--index-dir", "./idx", "index", "./lib/..."})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_UsesIndexDirByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newViewCmd())

	mockWorkflow.On("View", domain.ViewArgs{Index: m.Path(config.DefaultIndexDir)}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalDir(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newViewCmd())

	mockWorkflow.On("View", domain.ViewArgs{Index: "./custom-index"}).Return(nil)

	cmd.SetArgs([]string{"view", "./custom-index"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_TooManyArgs(t *testing.T) {
	cmd, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newViewCmd())

	cmd.SetArgs([]string{"view", "a", "b"})
	require.Error(t, cmd.Execute())
}

func TestViewCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRoot(t, mockWorkflow, newViewCmd())

	boom := errors.New("boom")
	mockWorkflow.On("View", mock.Anything).Return(boom)

	cmd.SetArgs([]string{"view"})
	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestCommands_WithRealWorkflow(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.pike"), []byte("#include \"globals.h\"\nint main() { }\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "globals.h"), []byte("constant answer = 42;\n"), 0o600))

	cmd, out := newTestRoot(t, nil, newLookupCmd())
	resolver = nil

	cmd.SetArgs([]string{"--root", dir, "--format", "json", "lookup", filepath.Join(dir, "main.pike"), "answer"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), `"name": "answer"`)
	assert.Contains(t, out.String(), "globals.h")
}
