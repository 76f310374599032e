package adapter

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// FSSourceReader serves absolute paths from an fs.FS. The FS root stands for
// the absolute path Mount, so with Mount "/ws" the path "/ws/lib/a.h" is read
// from "lib/a.h". It backs editor buffers held in memory and tests.
type FSSourceReader struct {
	fsys  fs.FS
	mount string
}

// NewFSSourceReader wraps fsys, mounted at the absolute path mount.
func NewFSSourceReader(fsys fs.FS, mount m.Path) *FSSourceReader {
	return &FSSourceReader{fsys: fsys, mount: filepath.ToSlash(filepath.Clean(string(mount)))}
}

// ReadFile reads path from the wrapped FS.
func (r *FSSourceReader) ReadFile(p m.Path) ([]byte, error) {
	name, ok := r.name(p)
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: string(p), Err: fs.ErrNotExist}
	}

	return fs.ReadFile(r.fsys, name)
}

// Exists reports whether p is a regular file in the wrapped FS.
func (r *FSSourceReader) Exists(p m.Path) bool {
	name, ok := r.name(p)
	if !ok {
		return false
	}

	info, err := fs.Stat(r.fsys, name)

	return err == nil && info.Mode().IsRegular()
}

// Canonical cleans p. An fs.FS has no symlinks to evaluate.
func (r *FSSourceReader) Canonical(p m.Path) (m.Path, error) {
	return m.Path(filepath.Clean(string(p))), nil
}

func (r *FSSourceReader) name(p m.Path) (string, bool) {
	clean := path.Clean(filepath.ToSlash(string(p)))
	if clean == r.mount {
		return ".", true
	}

	prefix := strings.TrimSuffix(r.mount, "/") + "/"

	rel, ok := strings.CutPrefix(clean, prefix)
	if !ok || !fs.ValidPath(rel) {
		return "", false
	}

	return rel, true
}
