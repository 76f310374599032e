// Package adapter contains the infrastructure adapters used by the resolver:
// file access, the parsed-file cache and the on-disk index store.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// SourceReader is the file access the resolver needs. Keeping it this small
// lets tests resolve whole include graphs from memory.
type SourceReader interface {
	// ReadFile returns the file contents, or an error wrapping fs.ErrNotExist.
	ReadFile(path m.Path) ([]byte, error)

	// Exists reports whether path names a regular file.
	Exists(path m.Path) bool

	// Canonical returns the absolute, cleaned form of path with symlinks
	// evaluated where the backing store supports them.
	Canonical(path m.Path) (m.Path, error)
}

// SourceFSAdapter abstracts the filesystem operations used when the CLI scans
// a workspace for files to check or index.
type SourceFSAdapter interface {
	SourceReader

	// Get collects files with one of the given extensions under roots. A root
	// ending in "/..." is scanned recursively.
	Get(roots []m.Path, exts []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files for the provided roots, deduplicated and in walk
// order.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exts []string) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	add := func(path string) error {
		if !hasExt(path, exts) {
			return nil
		}

		canonical, err := a.Canonical(m.Path(path))
		if err != nil {
			return err
		}

		if _, exists := seen[canonical]; exists {
			return nil
		}

		seen[canonical] = struct{}{}
		files = append(files, canonical)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skipDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading workspace sources is the purpose of this adapter
	return os.ReadFile(string(path))
}

// Exists reports whether path is a regular file.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && info.Mode().IsRegular()
}

// Canonical returns the absolute path with symlinks evaluated. Paths that do
// not exist yet are only cleaned.
func (a *LocalSourceFSAdapter) Canonical(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Path(abs), nil
		}

		return "", err
	}

	return m.Path(resolved), nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashContent returns the SHA-256 of content in the same format as HashFile.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func hasExt(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}

	return slices.Contains(exts, filepath.Ext(path))
}

func skipDir(name string) bool {
	return name == ".git" || name == "node_modules" || name == "vendor"
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rest, ok := strings.CutSuffix(rootStr, "/..."); ok {
		return rest, true
	}

	if rootStr == "..." {
		return ".", true
	}

	return rootStr, false
}
