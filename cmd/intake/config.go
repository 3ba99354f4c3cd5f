package main

import (
	"strings"
	"time"

	"resume-intake/validation"
)

// Config defines the CLI environment variables.
type Config struct {
	ServiceURL string `env:"INTAKE_SERVICE_URL,default=http://localhost:8000" validate:"required,url"`
	LogLevel   string `env:"LOG_LEVEL,default=warn"`
	// Comma-separated, e.g. ".pdf,.docx". Empty keeps the defaults.
	AllowedExtensions string        `env:"INTAKE_ALLOWED_EXTENSIONS"`
	MaxFileSizeBytes  int64         `env:"INTAKE_MAX_FILE_SIZE,default=10485760" validate:"gt=0"`
	UploadTimeout     time.Duration `env:"INTAKE_UPLOAD_TIMEOUT,default=60s"`
	// How long to wait for the background fingerprint before submitting,
	// display-only: submission never blocks on the digest.
	FingerprintWait time.Duration `env:"INTAKE_FINGERPRINT_WAIT,default=3s"`
	SkipHealthProbe bool          `env:"INTAKE_SKIP_HEALTH_PROBE,default=false"`
}

// ValidationConfig derives the validator's static acceptance rules.
func (c Config) ValidationConfig() validation.Config {
	cfg := validation.DefaultConfig()
	cfg.MaxFileSizeBytes = c.MaxFileSizeBytes
	if c.AllowedExtensions != "" {
		var exts []string
		for _, ext := range strings.Split(c.AllowedExtensions, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		cfg.AllowedExtensions = exts
	}
	return cfg
}
