package adapter

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	m "github.com/mouse-blink/pikescope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSourceReader(t *testing.T) {
	reader := NewFSSourceReader(fstest.MapFS{
		"main.pike":        {Data: []byte("int main() {}\n")},
		"parent/globals.h": {Data: []byte("constant x = 1;\n")},
		"parent/sub/.keep": {Data: nil},
	}, "/ws")

	t.Run("reads mounted paths", func(t *testing.T) {
		data, err := reader.ReadFile("/ws/parent/globals.h")
		require.NoError(t, err)
		assert.Equal(t, "constant x = 1;\n", string(data))
	})

	t.Run("paths outside the mount do not exist", func(t *testing.T) {
		_, err := reader.ReadFile("/other/main.pike")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.False(t, reader.Exists("/wsx/main.pike"))
	})

	t.Run("exists only for regular files", func(t *testing.T) {
		assert.True(t, reader.Exists("/ws/main.pike"))
		assert.True(t, reader.Exists("/ws/parent/../main.pike"))
		assert.False(t, reader.Exists("/ws/parent"))
		assert.False(t, reader.Exists("/ws/missing.h"))
	})

	t.Run("canonical cleans", func(t *testing.T) {
		got, err := reader.Canonical(m.Path("/ws/parent/../main.pike"))
		require.NoError(t, err)
		assert.Equal(t, m.Path("/ws/main.pike"), got)
	})
}
