package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRunFindsImagesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.PNG"))
	touch(t, filepath.Join(dir, "a.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.gif"))
	touch(t, filepath.Join(dir, ".hidden", "d.png"))

	var s FileScannerImpl
	items := Collect(s.Run(dir, nil))

	require.Len(t, items, 3)
	assert.Equal(t, "a.jpg", items[0].Name)
	assert.Equal(t, "b.PNG", items[1].Name)
	assert.Equal(t, filepath.Join(dir, "sub", "c.gif"), items[2].Path)
}

func TestRunCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.jpg"))
	touch(t, filepath.Join(dir, "b.webp"))

	s := FileScannerImpl{Extensions: map[string]bool{".webp": true}}
	items := Collect(s.Run(dir, nil))

	require.Len(t, items, 1)
	assert.Equal(t, "b.webp", items[0].Name)
}

func TestRunMissingDirLogs(t *testing.T) {
	var msgs []string
	var s FileScannerImpl
	items := Collect(s.Run(filepath.Join(t.TempDir(), "nope"), func(msg string) { msgs = append(msgs, msg) }))

	assert.Empty(t, items)
	assert.NotEmpty(t, msgs)
}
