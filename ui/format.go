// Package ui renders orchestrator snapshots for the terminal.
// It computes derived display values (formatted sizes, timestamps) from
// outcomes; the core never formats anything for humans.
package ui

import (
	"fmt"
	"time"
)

// FingerprintUnavailableMarker is shown when the content digest could
// not be computed. Distinct from the transient "computing" display.
const FingerprintUnavailableMarker = "unavailable"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count the way the intake service does
// in its own health report ("0 B", "1.5 MB").
func FormatFileSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0 B"
	}

	size := float64(sizeBytes)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[i])
}

// timestampLayouts covers the ISO-8601 variants the service emits;
// naive timestamps (no zone) come from its local clock.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// FormatTimestamp renders an ISO-8601 wire timestamp for display.
// An unparseable value is shown as-is rather than hidden.
func FormatTimestamp(iso string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02 Jan 2006 15:04:05")
		}
	}
	return iso
}
