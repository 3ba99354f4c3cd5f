package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"resume-intake/domain"
)

// Config is the static acceptance surface. It is injected at construction
// so independent validator instances never interfere.
type Config struct {
	AllowedExtensions []string
	MaxFileSizeBytes  int64
}

func DefaultConfig() Config {
	return Config{
		AllowedExtensions: []string{".pdf", ".docx"},
		MaxFileSizeBytes:  10 * domain.MB,
	}
}

// Validator applies acceptance rules to a candidate selection.
// Pure function of its input plus Config.
type Validator struct {
	allowed map[string]struct{}
	display string
	maxSize int64
}

func NewValidator(cfg Config) *Validator {
	allowed := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[normalizeExt(ext)] = struct{}{}
	}
	display := strings.Join(lo.Map(cfg.AllowedExtensions, func(ext string, _ int) string {
		return normalizeExt(ext)
	}), ", ")

	return &Validator{
		allowed: allowed,
		display: display,
		maxSize: cfg.MaxFileSizeBytes,
	}
}

// ValidateSelection rejects empty and multi-file selections outright,
// then evaluates every per-file rule so all reasons are reported at once.
func (v *Validator) ValidateSelection(files []domain.CandidateFile) domain.Verdict {
	switch len(files) {
	case 0:
		return domain.InvalidVerdict("No file selected. Choose a resume to upload.")
	case 1:
	default:
		return domain.InvalidVerdict(fmt.Sprintf("Select exactly one file (received %d).", len(files)))
	}
	return v.validateFile(files[0])
}

func (v *Validator) validateFile(file domain.CandidateFile) domain.Verdict {
	var reasons []string

	if _, ok := v.allowed[extensionOf(file.Name)]; !ok {
		reasons = append(reasons, fmt.Sprintf("File type not supported. Allowed types: %s", v.display))
	}

	if file.SizeBytes > v.maxSize {
		reasons = append(reasons, fmt.Sprintf("File size (%dMB) exceeds maximum allowed size (%dMB)",
			wholeMB(file.SizeBytes), wholeMB(v.maxSize)))
	}

	if file.SizeBytes == 0 {
		reasons = append(reasons, "File is empty.")
	}

	if len(reasons) > 0 {
		return domain.InvalidVerdict(reasons...)
	}
	return domain.ValidVerdict()
}

// extensionOf returns the lowercased text after the final dot.
// A name with no dot yields "", which is never in the allow-list.
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func wholeMB(size int64) int64 {
	return int64(math.Round(float64(size) / float64(domain.MB)))
}
