package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndClear(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	path, err := s.Save(strings.NewReader("fake-png-bytes"), "photo.png")
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(path))
	require.True(t, strings.HasPrefix(path, dir))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "fake-png-bytes", string(b))

	s.Clear(path)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestSaveNamesAreUnique(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save(strings.NewReader("one"), "same.png")
	require.NoError(t, err)
	b, err := s.Save(strings.NewReader("two"), "same.png")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestClearRefusesEscapes(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	outside := filepath.Join(dir, "precious.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	s.Clear(outside)
	s.Clear(filepath.Join(s.Dir, "..", "precious.txt"))

	_, err = os.Stat(outside)
	require.NoError(t, err, "files outside the upload dir are never removed")
}
