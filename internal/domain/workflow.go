package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/pikescope/internal/adapter"
	"github.com/mouse-blink/pikescope/internal/controller"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// DefaultExtensions are the file extensions scanned by Check and Index.
var DefaultExtensions = []string{".pike", ".pmod", ".h"}

// ErrDiagnosticsFound is returned by Check when any checked file has
// diagnostics, so the CLI can exit non-zero.
var ErrDiagnosticsFound = errors.New("diagnostics found")

// ResolveArgs selects the file to resolve.
type ResolveArgs struct {
	Path m.Path
	Root m.Path
	// Content replaces the file on disk when non-nil.
	Content []byte
}

// ScanArgs selects the files checked or indexed. Paths ending in "/..." are
// scanned recursively.
type ScanArgs struct {
	Paths      []m.Path
	Root       m.Path
	Extensions []string
	Threads    int
}

// CheckArgs contains the arguments for checking a set of files.
type CheckArgs struct {
	ScanArgs
}

// LookupArgs contains the arguments for looking up one name.
type LookupArgs struct {
	ResolveArgs
	Name string
}

// GraphArgs contains the arguments for exporting the include graph.
type GraphArgs struct {
	ResolveArgs
	Output io.Writer
}

// IndexArgs contains the arguments for writing an index.
type IndexArgs struct {
	ScanArgs
	Output m.Path
}

// ViewArgs contains the arguments for displaying a stored index.
type ViewArgs struct {
	Index m.Path
}

// Workflow defines the operations offered by the CLI.
type Workflow interface {
	Resolve(args ResolveArgs) error
	Check(args CheckArgs) error
	Lookup(args LookupArgs) error
	Graph(args GraphArgs) error
	Index(args IndexArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.IndexStore
	ui        controller.UI
	resolver  Resolver
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.IndexStore,
	ui controller.UI,
	resolver Resolver,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		resolver:  resolver,
		logger:    logger,
	}
}

// Resolve shows the merged scope of one file.
func (w *workflow) Resolve(args ResolveArgs) error {
	res, err := w.resolve(args)
	if err != nil {
		return err
	}

	return w.ui.DisplayScope(res)
}

// Check resolves every matching file and reports all diagnostics.
func (w *workflow) Check(args CheckArgs) error {
	results, err := w.resolveAll(args.ScanArgs)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayDiagnostics(results); err != nil {
		return err
	}

	for _, res := range results {
		if len(res.Diagnostics) > 0 {
			return ErrDiagnosticsFound
		}
	}

	return nil
}

// Lookup shows the declaration a name refers to. An unknown name is displayed
// and then returned as an UnresolvedSymbol diagnostic.
func (w *workflow) Lookup(args LookupArgs) error {
	res, err := w.resolve(args.ResolveArgs)
	if err != nil {
		return err
	}

	sym, diag := LookupSymbol(res, args.Name)
	if diag != nil {
		if err := w.ui.DisplayUnresolved(diag); err != nil {
			return err
		}

		return diag
	}

	return w.ui.DisplaySymbol(sym, res.Scope.Shadowed(sym.Name))
}

// Graph writes the include graph of one file in DOT format.
func (w *workflow) Graph(args GraphArgs) error {
	res, err := w.resolve(args.ResolveArgs)
	if err != nil {
		return err
	}

	if err := WriteDOT(res, args.Output); err != nil {
		return fmt.Errorf("write include graph: %w", err)
	}

	return nil
}

// Index resolves every matching file and stores the results.
func (w *workflow) Index(args IndexArgs) error {
	results, err := w.resolveAll(args.ScanArgs)
	if err != nil {
		return err
	}

	entries := make([]m.IndexEntry, 0, len(results))
	for _, res := range results {
		entries = append(entries, NewIndexEntry(res))
	}

	if err := w.store.SaveIndex(args.Output, entries); err != nil {
		return fmt.Errorf("save index: %w", err)
	}

	return w.ui.DisplayIndexSaved(len(entries), args.Output)
}

// View displays a previously written index.
func (w *workflow) View(args ViewArgs) error {
	entries, err := w.store.LoadIndex(args.Index)
	if err != nil {
		return fmt.Errorf("load index: %w", err)
	}

	return w.ui.DisplayIndex(entries)
}

// NewIndexEntry converts a resolution into its stored form.
func NewIndexEntry(res m.Resolution) m.IndexEntry {
	entry := m.IndexEntry{
		File:        res.File.Path,
		Hash:        adapter.HashContent([]byte(res.File.Text)),
		Directives:  res.File.Directives,
		Diagnostics: res.Diagnostics,
	}

	if res.Scope != nil {
		entry.Symbols = res.Scope.Symbols()
	}

	return entry
}

func (w *workflow) resolve(args ResolveArgs) (m.Resolution, error) {
	res, err := w.resolver.Resolve(Request{Path: args.Path, Root: args.Root, Content: args.Content})
	if err != nil {
		return m.Resolution{}, fmt.Errorf("resolve %s: %w", args.Path, err)
	}

	return res, nil
}

// resolveAll resolves the scanned files concurrently. Results keep the order
// in which the files were found.
func (w *workflow) resolveAll(args ScanArgs) ([]m.Resolution, error) {
	exts := args.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	files, err := w.fsAdapter.Get(args.Paths, exts)
	if err != nil {
		return nil, fmt.Errorf("collect sources: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	w.logger.Debug("resolving files", "files", len(files), "threads", threads)

	results := make([]m.Resolution, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, file := range files {
		g.Go(func() error {
			res, err := w.resolve(ResolveArgs{Path: file, Root: args.Root})
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
