package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"resume-intake/domain"
	"resume-intake/intake"
)

// RenderVerdict prints each validation reason on its own line, in the
// order the rules were evaluated.
func RenderVerdict(w io.Writer, verdict domain.Verdict) {
	if verdict.IsValid {
		fmt.Fprintln(w, color.New(color.FgGreen).Render("File accepted"))
		return
	}
	for _, reason := range verdict.Errors {
		fmt.Fprintln(w, color.New(color.FgRed).Render("✗ "+reason))
	}
}

// RenderFingerprint shows the digest, or a transient/degraded marker.
func RenderFingerprint(w io.Writer, snap intake.Snapshot) {
	switch snap.FingerprintStatus {
	case intake.FingerprintReady:
		fmt.Fprintf(w, "SHA-256: %s\n", snap.Fingerprint)
	case intake.FingerprintComputing:
		fmt.Fprintln(w, "SHA-256: computing...")
	case intake.FingerprintUnavailable:
		fmt.Fprintf(w, "SHA-256: %s\n", FingerprintUnavailableMarker)
	}
}

// RenderReceipt prints the upload receipt as a borderless key/value table.
func RenderReceipt(w io.Writer, receipt *domain.UploadReceipt) {
	fmt.Fprintln(w, color.New(color.FgGreen).Render("Upload succeeded"))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"Resume ID", receipt.ResumeID})
	table.Append([]string{"Run ID", receipt.RunID})
	table.Append([]string{"File", receipt.FileName})
	table.Append([]string{"Size", FormatFileSize(receipt.FileSizeBytes)})
	table.Append([]string{"MIME type", receipt.MimeType})
	table.Append([]string{"SHA-256", receipt.FileHash})
	table.Append([]string{"Stored at", receipt.StoredPath})
	table.Append([]string{"Uploaded", FormatTimestamp(receipt.UploadTimestamp)})
	table.Append([]string{"Status", receipt.Status})
	table.Render()
}

// RenderFailure prints the resolved failure message.
func RenderFailure(w io.Writer, message string) {
	fmt.Fprintln(w, color.New(color.FgRed).Render("Upload failed: "+message))
}

// RenderUploadHealth prints the service's advertised limits.
func RenderUploadHealth(w io.Writer, health *domain.UploadHealth) {
	status := color.New(color.FgGreen).Render(health.Status)
	if health.Status != "healthy" {
		status = color.New(color.FgYellow).Render(health.Status)
	}
	fmt.Fprintf(w, "Service %s: %s (max %s, types: %s)\n",
		health.Service, status, health.MaxFileSize, strings.Join(health.AllowedTypes, ", "))
}
