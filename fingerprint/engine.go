// Package fingerprint computes content digests over candidate files.
// Identical bytes always yield the identical digest; name, MIME type
// and timestamps never enter the computation.
package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"resume-intake/domain"
)

// Engine streams a candidate's exact bytes through SHA-256.
// Stateless; a single instance can serve any number of callers.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Fingerprint returns the 64-character lowercase hex digest of the
// candidate's content. A read failure is an I/O error, distinct from
// validation: callers degrade the displayed fingerprint instead of
// blocking submission.
func (e *Engine) Fingerprint(ctx context.Context, file domain.CandidateFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open candidate %q: %w", file.Name, err)
	}
	defer r.Close()

	h := sha256.New()
	if _, err := io.Copy(h, contextReader{ctx: ctx, r: r}); err != nil {
		return "", fmt.Errorf("read candidate %q: %w", file.Name, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// contextReader aborts a long digest when the context is done,
// since io.Copy itself has no cancellation point.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
