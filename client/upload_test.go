package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-intake/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func successBody(hash string) map[string]any {
	return map[string]any{
		"resume_id":        "0b8f6a4e-9e1d-4c7a-8d2b-5a9e3f1c6d70",
		"run_id":           "7c3e2d1a-4b5f-4e6d-9a8c-1f2e3d4c5b6a",
		"file_hash":        hash,
		"stored_path":      "data/original/2026/08/run/resume.pdf",
		"file_name":        "resume.pdf",
		"file_size":        1024,
		"mime_type":        "application/pdf",
		"upload_timestamp": "2026-08-26T10:30:00",
		"status":           "uploaded",
	}
}

const testHash = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestUpload_Success(t *testing.T) {
	req := require.New(t)

	var gotField, gotFilename, gotPartType, gotRequestID, gotContent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/uploads/resume", r.URL.Path)
		gotRequestID = r.Header.Get("X-Request-ID")

		mr, err := r.MultipartReader()
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		part, err := mr.NextPart()
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotField = part.FormName()
		gotFilename = part.FileName()
		gotPartType = part.Header.Get("Content-Type")
		content, _ := io.ReadAll(part)
		gotContent = string(content)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successBody(testHash))
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	file := domain.NewCandidateBuffer("resume.pdf", []byte("resume bytes"))

	receipt, err := c.Upload(context.Background(), file)
	req.NoError(err)

	assert.Equal(t, "file", gotField)
	assert.Equal(t, "resume.pdf", gotFilename)
	assert.Equal(t, "resume bytes", gotContent)
	assert.NotEmpty(t, gotPartType)
	assert.NotEmpty(t, gotRequestID)

	assert.Equal(t, testHash, receipt.FileHash)
	assert.Equal(t, "uploaded", receipt.Status)
	assert.Equal(t, int64(1024), receipt.FileSizeBytes)
	assert.Equal(t, "data/original/2026/08/run/resume.pdf", receipt.StoredPath)
}

func TestUpload_ServerRejection(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"error":"too_large","message":"File exceeds limit","request_id":"r1"}`))
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	_, err := c.Upload(context.Background(), domain.NewCandidateBuffer("resume.pdf", []byte("x")))

	var upErr *domain.UploadError
	req.ErrorAs(err, &upErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, upErr.StatusCode)
	assert.Equal(t, "too_large", upErr.Kind)
	assert.Equal(t, "File exceeds limit", upErr.Message)
	assert.Equal(t, "r1", upErr.RequestID)
	assert.False(t, upErr.IsTransport())
}

func TestUpload_RejectionWithDetails(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_file_type","message":"File type not supported","request_id":"r2","details":{"filename":"resume.txt"}}`))
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	_, err := c.Upload(context.Background(), domain.NewCandidateBuffer("resume.txt", []byte("x")))

	var upErr *domain.UploadError
	req.ErrorAs(err, &upErr)
	assert.Equal(t, http.StatusBadRequest, upErr.StatusCode)
	assert.Equal(t, map[string]string{"filename": "resume.txt"}, upErr.Details)
}

func TestUpload_UnparseableErrorBodyFallsBack(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway exploded</html>"))
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	_, err := c.Upload(context.Background(), domain.NewCandidateBuffer("resume.pdf", []byte("x")))

	var upErr *domain.UploadError
	req.ErrorAs(err, &upErr)
	assert.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
	assert.Equal(t, genericRejectionMessage, upErr.Message)
	// The client's own request ID fills in when the server gives none.
	assert.NotEmpty(t, upErr.RequestID)
}

func TestUpload_TransportFailure(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	c := NewUploadClient(server.URL, nil, testLogger())
	_, err := c.Upload(context.Background(), domain.NewCandidateBuffer("resume.pdf", []byte("x")))

	var upErr *domain.UploadError
	req.ErrorAs(err, &upErr)
	assert.True(t, upErr.IsTransport())
	assert.Equal(t, domain.TransportStatusCode, upErr.StatusCode)
	assert.Equal(t, transportFailureMessage, upErr.Message)
}

func TestUpload_MalformedReceiptIsNotFatal(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := successBody(testHash)
		body["resume_id"] = "not-a-uuid"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	receipt, err := c.Upload(context.Background(), domain.NewCandidateBuffer("resume.pdf", []byte("x")))

	// Shape violations are logged, not raised.
	req.NoError(err)
	assert.Equal(t, "not-a-uuid", receipt.ResumeID)
}
