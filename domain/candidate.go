package domain

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const KB = 1024
const MB = KB * KB

// CandidateFile is an opaque handle to user-selected binary content.
// The declared MIME type is advisory only; fingerprinting and upload
// read the exact bytes through Open.
type CandidateFile struct {
	Name             string
	SizeBytes        int64
	DeclaredMimeType string
	// Opener yields a fresh reader over the candidate's backing store.
	// Each consumer (fingerprint, upload) opens its own stream.
	Opener func() (io.ReadCloser, error)
}

// NewCandidateFile builds a candidate from a file on disk.
// The MIME type is detected from magic bytes, never from the extension.
func NewCandidateFile(path string) (CandidateFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return CandidateFile{}, fmt.Errorf("resolve path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return CandidateFile{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return CandidateFile{}, fmt.Errorf("%q is a directory, not a file", path)
	}

	declared := "application/octet-stream"
	if mt, err := mimetype.DetectFile(abs); err == nil {
		declared = mt.String()
	}

	return CandidateFile{
		Name:             filepath.Base(abs),
		SizeBytes:        info.Size(),
		DeclaredMimeType: declared,
		Opener: func() (io.ReadCloser, error) {
			return os.Open(abs)
		},
	}, nil
}

// NewCandidateBuffer builds an in-memory candidate, used for piped input and tests.
func NewCandidateBuffer(name string, content []byte) CandidateFile {
	return CandidateFile{
		Name:             name,
		SizeBytes:        int64(len(content)),
		DeclaredMimeType: mimetype.Detect(content).String(),
		Opener: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

// Open returns a fresh stream over the candidate's content.
func (f CandidateFile) Open() (io.ReadCloser, error) {
	if f.Opener == nil {
		return nil, fmt.Errorf("candidate %q has no backing store", f.Name)
	}
	return f.Opener()
}
