package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"resume-intake/domain"
)

const (
	apiHealthPath    = "/health"
	uploadHealthPath = "/api/uploads/health"
)

// APIHealth probes the service-wide health endpoint.
func (c *UploadClient) APIHealth(ctx context.Context) (*domain.APIHealth, error) {
	var out domain.APIHealth
	if err := c.getJSON(ctx, apiHealthPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadHealth probes the upload subsystem and reports the limits the
// service is currently enforcing.
func (c *UploadClient) UploadHealth(ctx context.Context) (*domain.UploadHealth, error) {
	var out domain.UploadHealth
	if err := c.getJSON(ctx, uploadHealthPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *UploadClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s body: %w", path, err)
	}
	return nil
}
