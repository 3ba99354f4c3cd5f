package domain

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidateFile(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	content := []byte("%PDF-1.4 minimal resume body")
	req.NoError(os.WriteFile(path, content, 0o644))

	file, err := NewCandidateFile(path)
	req.NoError(err)

	assert.Equal(t, "resume.pdf", file.Name)
	assert.Equal(t, int64(len(content)), file.SizeBytes)
	// MIME detection works from magic bytes, not from the extension.
	assert.Contains(t, file.DeclaredMimeType, "application/pdf")

	r, err := file.Open()
	req.NoError(err)
	defer r.Close()
	got, err := io.ReadAll(r)
	req.NoError(err)
	assert.Equal(t, content, got)
}

func TestNewCandidateFile_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := NewCandidateFile(filepath.Join(t.TempDir(), "absent.pdf"))
		require.Error(t, err)
	})

	t.Run("Directory is not a candidate", func(t *testing.T) {
		_, err := NewCandidateFile(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory")
	})
}

func TestCandidateBuffer(t *testing.T) {
	req := require.New(t)

	file := NewCandidateBuffer("notes.txt", []byte("plain text"))
	req.Equal(int64(10), file.SizeBytes)
	req.Contains(file.DeclaredMimeType, "text/plain")

	// Each Open yields a fresh stream over the same bytes.
	for i := 0; i < 2; i++ {
		r, err := file.Open()
		req.NoError(err)
		got, err := io.ReadAll(r)
		req.NoError(err)
		req.Equal("plain text", string(got))
		req.NoError(r.Close())
	}
}

func TestCandidateWithoutBackingStore(t *testing.T) {
	file := CandidateFile{Name: "ghost.pdf", SizeBytes: 10}
	_, err := file.Open()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no backing store")
}
