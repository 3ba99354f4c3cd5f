// Package client talks to the remote intake service over HTTP.
// It maps every failure into the single typed *domain.UploadError shape:
// transport failures carry the sentinel status 0, server rejections keep
// the HTTP status for diagnostics.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"resume-intake/domain"
)

const (
	uploadPath = "/api/uploads/resume"
	// fileField is the multipart field name the service expects.
	fileField = "file"

	transportFailureMessage = "Could not reach the upload service. Check your connection and try again."
	genericRejectionMessage = "Upload failed. Please try again."
)

// UploadClient submits validated candidates to the intake service.
// One attempt per call; retry policy belongs to the orchestrator.
type UploadClient struct {
	baseURL    string
	httpClient *http.Client
	check      *validator.Validate
	log        *slog.Logger
}

func NewUploadClient(baseURL string, httpClient *http.Client, log *slog.Logger) *UploadClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &UploadClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		check:      validator.New(),
		log:        log,
	}
}

// serviceError is the wire shape of the service's error body.
type serviceError struct {
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id"`
	Details   map[string]string `json:"details,omitempty"`
}

// Upload posts the candidate's raw bytes under the fixed field name and
// awaits the full response. Errors are always *domain.UploadError.
func (c *UploadClient) Upload(ctx context.Context, file domain.CandidateFile) (*domain.UploadReceipt, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body, contentType, err := buildMultipartBody(file)
	if err != nil {
		c.log.Error("Failed to build upload request", "req_id", reqID, "file", file.Name, "error", err)
		return nil, &domain.UploadError{
			StatusCode: domain.TransportStatusCode,
			Kind:       "request_build_failed",
			Message:    transportFailureMessage,
			RequestID:  reqID,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, &domain.UploadError{
			StatusCode: domain.TransportStatusCode,
			Kind:       "request_build_failed",
			Message:    transportFailureMessage,
			RequestID:  reqID,
		}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", reqID)

	c.log.Info("Submitting candidate",
		"req_id", reqID,
		"file", file.Name,
		"size_bytes", file.SizeBytes,
		"mime_type", file.DeclaredMimeType,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Upload transport failure", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &domain.UploadError{
			StatusCode: domain.TransportStatusCode,
			Kind:       "network_unreachable",
			Message:    transportFailureMessage,
			RequestID:  reqID,
		}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("Failed to close response body", "req_id", reqID, "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	c.log.Info("Upload response received",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, c.rejectionError(resp.StatusCode, raw, reqID)
	}

	var receipt domain.UploadReceipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		c.log.Error("Unparseable success body", "req_id", reqID, "error", err)
		return nil, &domain.UploadError{
			StatusCode: resp.StatusCode,
			Kind:       "invalid_response",
			Message:    genericRejectionMessage,
			RequestID:  reqID,
		}
	}

	// Shape check only. A receipt that breaks the service's own promises
	// is worth a warning, not a failed upload.
	if err := c.check.Struct(receipt); err != nil {
		c.log.Warn("Receipt failed shape validation", "req_id", reqID, "run_id", receipt.RunID, "error", err)
	}

	return &receipt, nil
}

// rejectionError decodes the structured error body, falling back to a
// generic message when the body doesn't parse.
func (c *UploadClient) rejectionError(status int, raw []byte, reqID string) *domain.UploadError {
	var body serviceError
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		c.log.Warn("Unparseable error body", "req_id", reqID, "status", status)
		return &domain.UploadError{
			StatusCode: status,
			Kind:       "upload_failed",
			Message:    genericRejectionMessage,
			RequestID:  reqID,
		}
	}
	if body.RequestID == "" {
		body.RequestID = reqID
	}
	return &domain.UploadError{
		StatusCode: status,
		Kind:       body.Error,
		Message:    body.Message,
		RequestID:  body.RequestID,
		Details:    body.Details,
	}
}

// buildMultipartBody serializes the candidate into a single-part form.
// The part carries the candidate's sniffed MIME type so the service does
// not have to trust the extension.
func buildMultipartBody(file domain.CandidateFile) (*bytes.Buffer, string, error) {
	r, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open candidate: %w", err)
	}
	defer r.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, file.Name))
	mime := file.DeclaredMimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	header.Set("Content-Type", mime)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create form part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("read candidate bytes: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
