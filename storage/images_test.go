package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ImageStore {
	t.Helper()
	s, err := NewImageStore(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)
	return s
}

func TestImageStore_SaveAndRead(t *testing.T) {
	s := newStore(t)

	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	require.NoError(t, s.Save(7, bytes.NewReader(payload)))

	b, found, err := s.Read(7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, b)
}

func TestImageStore_SaveReplacesPriorImage(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(1, bytes.NewReader([]byte("first image, longer payload"))))
	require.NoError(t, s.Save(1, bytes.NewReader([]byte("second"))))

	b, found, err := s.Read(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), b)
}

func TestImageStore_ReadMissing(t *testing.T) {
	s := newStore(t)

	b, found, err := s.Read(42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, b)
}

func TestImageStore_Remove(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(3, bytes.NewReader([]byte("x"))))
	assert.True(t, s.Exists(3))

	removed, err := s.Remove(3)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.Exists(3))

	removed, err = s.Remove(3)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestImageStore_FilesAreKeyedByPostID(t *testing.T) {
	base := filepath.Join(t.TempDir(), "images")
	s, err := NewImageStore(base)
	require.NoError(t, err)

	require.NoError(t, s.Save(12, bytes.NewReader([]byte("x"))))

	_, statErr := os.Stat(filepath.Join(base, "12.png"))
	assert.NoError(t, statErr)
}
