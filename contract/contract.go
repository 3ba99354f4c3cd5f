package contract

import (
	"context"

	"resume-intake/domain"
)

// SelectionValidator judges a user selection against static acceptance rules.
// It never touches the network and never errors for expected conditions.
type SelectionValidator interface {
	ValidateSelection(files []domain.CandidateFile) domain.Verdict
}

// Fingerprinter computes a content digest over a candidate's exact bytes.
// Stateless; staleness of results is the caller's concern.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, file domain.CandidateFile) (string, error)
}

// Uploader submits one candidate and maps the outcome to a receipt or a
// *domain.UploadError. No retries.
type Uploader interface {
	Upload(ctx context.Context, file domain.CandidateFile) (*domain.UploadReceipt, error)
}
