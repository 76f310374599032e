package domain

import (
	"testing/fstest"

	"github.com/mouse-blink/pikescope/internal/adapter"
)

const testRoot = "/ws"

// memReader serves files keyed relative to /ws.
func memReader(files map[string]string) *adapter.FSSourceReader {
	fsys := fstest.MapFS{}
	for name, text := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(text)}
	}

	return adapter.NewFSSourceReader(fsys, testRoot)
}
