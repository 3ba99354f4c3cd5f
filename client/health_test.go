package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthProbes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"healthy","service":"backend","version":"0.1.0"}`))
		case "/api/uploads/health":
			_, _ = w.Write([]byte(`{"status":"healthy","service":"upload","max_file_size":"10.0 MB","allowed_types":["pdf","docx"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	ctx := context.Background()

	t.Run("API health", func(t *testing.T) {
		health, err := c.APIHealth(ctx)
		require.NoError(t, err)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "backend", health.Service)
	})

	t.Run("Upload subsystem health", func(t *testing.T) {
		health, err := c.UploadHealth(ctx)
		require.NoError(t, err)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "upload", health.Service)
		assert.Equal(t, "10.0 MB", health.MaxFileSize)
		assert.Equal(t, []string{"pdf", "docx"}, health.AllowedTypes)
	})
}

func TestHealthProbe_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, nil, testLogger())
	_, err := c.UploadHealth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}
