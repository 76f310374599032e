package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/pikescope/internal/adapter"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// DefaultMaxFiles caps the number of files loaded by a single request.
const DefaultMaxFiles = 256

// Request asks for the scope of one file.
type Request struct {
	Path m.Path
	// Root bounds include resolution. Empty means the directory of Path.
	Root m.Path
	// Content, when non-nil, is used instead of reading Path, typically an
	// unsaved editor buffer.
	Content []byte
}

// Resolver builds the merged scope of a file.
type Resolver interface {
	Resolve(req Request) (m.Resolution, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithParseCache shares parsed files between requests.
func WithParseCache(cache adapter.ParseCache) LoaderOption {
	return func(l *Loader) {
		l.cache = cache
	}
}

// WithMaxFiles overrides DefaultMaxFiles. Values below one are ignored.
func WithMaxFiles(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxFiles = n
		}
	}
}

// WithLogger sets the logger used for debug tracing of a request.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader resolves include graphs recursively. A Loader is safe for concurrent
// use as long as its ParseCache is; every request keeps its own state.
type Loader struct {
	reader   adapter.SourceReader
	cache    adapter.ParseCache
	maxFiles int
	logger   *slog.Logger
}

// NewLoader returns a Loader reading sources through reader.
func NewLoader(reader adapter.SourceReader, opts ...LoaderOption) *Loader {
	l := &Loader{
		reader:   reader,
		maxFiles: DefaultMaxFiles,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Resolve loads req.Path and everything it includes. Problems inside the
// include graph are returned as diagnostics; an error is returned only when
// the requested file itself cannot be used.
func (l *Loader) Resolve(req Request) (m.Resolution, error) {
	path, err := l.reader.Canonical(req.Path)
	if err != nil {
		return m.Resolution{}, fmt.Errorf("canonicalize %s: %w", req.Path, err)
	}

	root := req.Root
	if root == "" {
		root = m.Path(filepath.Dir(string(path)))
	}

	root, err = l.reader.Canonical(root)
	if err != nil {
		return m.Resolution{}, fmt.Errorf("canonicalize root %s: %w", req.Root, err)
	}

	resolver := NewPathResolver(l.reader, root)
	if !resolver.Contains(path) {
		return m.Resolution{}, fmt.Errorf("%s is outside the workspace %s", path, root)
	}

	content := req.Content
	if content == nil {
		content, err = l.reader.ReadFile(path)
		if err != nil {
			return m.Resolution{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	p := &pass{
		loader:     l,
		resolver:   resolver,
		scopes:     make(map[m.Path]*m.ScopeTable),
		inProgress: make(map[m.Path]bool),
	}

	parsed := l.parse(path, content)
	scope, directives := p.build(parsed)

	l.logger.Debug("resolved scope",
		"path", path,
		"files", len(p.loaded),
		"symbols", scope.Len(),
		"diagnostics", len(p.diagnostics))

	return m.Resolution{
		File: m.SourceFile{
			Path:       path,
			Text:       string(content),
			Directives: directives,
		},
		Scope:       scope,
		Diagnostics: p.diagnostics,
		Loaded:      p.loaded,
		Includes:    p.includes,
	}, nil
}

// parse scans one file, going through the cache when there is one.
func (l *Loader) parse(path m.Path, content []byte) m.ParsedFile {
	hash := adapter.HashContent(content)

	if l.cache != nil {
		if parsed, ok := l.cache.Get(path, hash); ok {
			return parsed
		}
	}

	text := string(content)
	parsed := m.ParsedFile{Path: path, Hash: hash}

	for d, err := range ScanDirectives(path, text) {
		if err != nil {
			parsed.Diagnostics = append(parsed.Diagnostics, asDiagnostic(err))

			continue
		}

		parsed.Directives = append(parsed.Directives, d)
	}

	parsed.Declarations = ParseDeclarations(path, text)

	if l.cache != nil {
		l.cache.Put(parsed)
	}

	return parsed
}

// pass is the state of a single resolution request.
type pass struct {
	loader   *Loader
	resolver *PathResolver

	// scopes holds every file already built in this pass.
	scopes map[m.Path]*m.ScopeTable
	// inProgress and stack describe the current include chain.
	inProgress map[m.Path]bool
	stack      []m.Path

	loaded       []m.Path
	includes     []m.IncludeEdge
	diagnostics  []*m.Diagnostic
	limitReached bool
}

// build merges the scopes of parsed's includes in order, then declares its own
// symbols over them. It returns the directives with their resolved paths.
func (p *pass) build(parsed m.ParsedFile) (*m.ScopeTable, []m.Directive) {
	p.inProgress[parsed.Path] = true
	p.stack = append(p.stack, parsed.Path)
	p.loaded = append(p.loaded, parsed.Path)
	p.diagnostics = append(p.diagnostics, parsed.Diagnostics...)

	p.loader.logger.Debug("loading file",
		"path", parsed.Path,
		"directives", len(parsed.Directives),
		"declarations", len(parsed.Declarations),
		"depth", len(p.stack))

	scope := m.NewScopeTable(parsed.Path)
	directives := make([]m.Directive, len(parsed.Directives))

	for i, d := range parsed.Directives {
		var included *m.ScopeTable

		included, directives[i] = p.include(parsed.Path, d)
		scope.Merge(included)
	}

	for _, sym := range parsed.Declarations {
		scope.Declare(sym)
	}

	p.stack = p.stack[:len(p.stack)-1]
	delete(p.inProgress, parsed.Path)
	p.scopes[parsed.Path] = scope

	return scope, directives
}

// include returns the scope contributed by one directive, or nil when the
// branch is cut short by a diagnostic.
func (p *pass) include(from m.Path, d m.Directive) (*m.ScopeTable, m.Directive) {
	target, err := p.resolver.Resolve(d, from)
	if err != nil {
		p.report(asDiagnostic(err))

		return nil, d
	}

	d.Resolved = target
	p.includes = append(p.includes, m.IncludeEdge{From: from, To: target, Line: d.Line, Kind: d.Kind})

	if p.inProgress[target] {
		p.reportCycle(from, d, target)

		return nil, d
	}

	if scope, ok := p.scopes[target]; ok {
		return scope, d
	}

	if len(p.loaded) >= p.loader.maxFiles {
		if !p.limitReached {
			p.limitReached = true
			p.report(m.NewDiagnostic(m.IncludeLimit, from, d.Line,
				"include limit of %d files reached, %q and later includes are skipped", p.loader.maxFiles, d.Literal))
		}

		return nil, d
	}

	content, err := p.loader.reader.ReadFile(target)
	if err != nil {
		p.report(m.NewDiagnostic(m.UnreadableFile, from, d.Line, "cannot read %s: %v", target, err))

		return nil, d
	}

	scope, _ := p.build(p.loader.parse(target, content))

	return scope, d
}

func (p *pass) reportCycle(from m.Path, d m.Directive, target m.Path) {
	start := 0

	for i, path := range p.stack {
		if path == target {
			start = i

			break
		}
	}

	chain := append([]m.Path{}, p.stack[start:]...)
	chain = append(chain, target)

	names := make([]string, len(chain))
	for i, path := range chain {
		names[i] = string(path)
	}

	diag := m.NewDiagnostic(m.CyclicInclude, from, d.Line, "include cycle: %s", strings.Join(names, " -> "))
	diag.Chain = chain

	p.loader.logger.Debug("skipping cyclic include", "from", from, "target", target)
	p.report(diag)
}

func (p *pass) report(diag *m.Diagnostic) {
	p.diagnostics = append(p.diagnostics, diag)
}

func asDiagnostic(err error) *m.Diagnostic {
	var diag *m.Diagnostic
	if errors.As(err, &diag) {
		return diag
	}

	return &m.Diagnostic{Kind: m.UnreadableFile, Message: err.Error()}
}
