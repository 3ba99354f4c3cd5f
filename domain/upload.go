package domain

import "fmt"

// UploadReceipt is the intake service's success response for one upload.
// Validate tags describe the shape the service promises; a receipt that
// breaks them is suspicious but never fatal to the client.
type UploadReceipt struct {
	ResumeID        string            `json:"resume_id" validate:"required,uuid4"`
	RunID           string            `json:"run_id" validate:"required,uuid4"`
	FileHash        string            `json:"file_hash" validate:"required,len=64,hexadecimal"`
	StoredPath      string            `json:"stored_path" validate:"required"`
	FileName        string            `json:"file_name" validate:"required"`
	FileSizeBytes   int64             `json:"file_size" validate:"gte=0"`
	MimeType        string            `json:"mime_type" validate:"required"`
	UploadTimestamp string            `json:"upload_timestamp" validate:"required"`
	Status          string            `json:"status" validate:"required"`
	Details         map[string]string `json:"details,omitempty"`
}

// TransportStatusCode marks an upload failure where no server response
// was obtained (network unreachable, request aborted).
const TransportStatusCode = 0

// UploadError is the single typed failure shape for both transport and
// server-reported errors, distinguished by StatusCode.
type UploadError struct {
	StatusCode int
	Kind       string
	Message    string
	RequestID  string
	Details    map[string]string
}

func (e *UploadError) Error() string {
	if e.StatusCode == TransportStatusCode {
		return fmt.Sprintf("upload transport failure: %s", e.Message)
	}
	return fmt.Sprintf("upload rejected (status %d, %s): %s", e.StatusCode, e.Kind, e.Message)
}

// IsTransport reports whether the upload failed before any server response.
func (e *UploadError) IsTransport() bool {
	return e.StatusCode == TransportStatusCode
}

// APIHealth is the body of GET /health.
type APIHealth struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}

// UploadHealth is the body of GET /api/uploads/health. MaxFileSize is
// a human-readable string rendered by the service, not a byte count.
type UploadHealth struct {
	Status       string   `json:"status"`
	Service      string   `json:"service"`
	MaxFileSize  string   `json:"max_file_size"`
	AllowedTypes []string `json:"allowed_types"`
}
