package audiostore

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("audio-bytes"), ".webm")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".webm"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_DefaultSuffix(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".webm"))
	require.NoError(t, store.Remove(path))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(store.Dir()+"/does-not-exist.webm"))
}

func TestSave_UniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	p1, err := store.Save(strings.NewReader("a"), ".webm")
	require.NoError(t, err)
	p2, err := store.Save(strings.NewReader("b"), ".webm")
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
