// Package intake sequences one upload session: selection, validation,
// background fingerprinting, submission, and resolution. It holds at most
// one candidate file and one in-flight upload at any time.
package intake

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"

	"resume-intake/contract"
	"resume-intake/domain"
	"resume-intake/errors"
)

type Orchestrator struct {
	mu        sync.Mutex
	log       *slog.Logger
	validator contract.SelectionValidator
	engine    contract.Fingerprinter
	uploader  contract.Uploader

	state       State
	file        domain.CandidateFile
	hasFile     bool
	verdict     domain.Verdict
	fingerprint string
	fpStatus    FingerprintStatus
	receipt     *domain.UploadReceipt
	failure     string
	// generation tags each candidate so fingerprint results computed for
	// a superseded file can be recognized and dropped. Staleness handling,
	// not cancellation: the underlying read is never aborted.
	generation uint64
}

func NewOrchestrator(
	log *slog.Logger,
	validator contract.SelectionValidator,
	engine contract.Fingerprinter,
	uploader contract.Uploader,
) *Orchestrator {
	return &Orchestrator{
		log:       log,
		validator: validator,
		engine:    engine,
		uploader:  uploader,
		state:     StateIdle,
	}
}

// Select validates a user selection and, when it passes, replaces the
// candidate wholesale and starts fingerprinting in the background.
// An invalid selection surfaces its verdict without any transition.
// Selection is rejected while an upload is in flight and after the
// session has resolved (Reset is the only way out of those states).
func (o *Orchestrator) Select(ctx context.Context, files ...domain.CandidateFile) (domain.Verdict, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateUploading:
		o.log.Warn("Selection rejected, upload in flight")
		return domain.Verdict{}, errors.ErrUploadInFlight
	case StateSucceeded, StateFailed:
		o.log.Warn("Selection rejected, session already resolved", "state", o.state.String())
		return domain.Verdict{}, errors.ErrSessionResolved
	}

	verdict := o.validator.ValidateSelection(files)
	if !verdict.IsValid {
		o.log.Info("Selection failed validation", "reasons", verdict.Errors)
		return verdict, nil
	}

	file := files[0]
	o.state = StateFileSelected
	o.file = file
	o.hasFile = true
	o.verdict = verdict
	o.fingerprint = ""
	o.fpStatus = FingerprintComputing
	o.receipt = nil
	o.failure = ""
	o.generation++

	o.log.Info("Candidate selected",
		"file", file.Name,
		"size_bytes", file.SizeBytes,
		"mime_type", file.DeclaredMimeType,
	)

	go o.computeFingerprint(ctx, file, o.generation)

	return verdict, nil
}

// computeFingerprint runs outside the lock and applies its result only if
// the candidate it was started for is still the current one.
func (o *Orchestrator) computeFingerprint(ctx context.Context, file domain.CandidateFile, gen uint64) {
	digest, err := o.engine.Fingerprint(ctx, file)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.log.Debug("Dropping stale fingerprint result", "file", file.Name)
		return
	}

	if err != nil {
		// Non-fatal: the displayed fingerprint degrades, submission stays open.
		o.log.Warn("Fingerprint unavailable", "file", file.Name, "error", err)
		o.fpStatus = FingerprintUnavailable
		return
	}

	o.fingerprint = digest
	o.fpStatus = FingerprintReady
	o.log.Debug("Fingerprint ready", "file", file.Name, "sha256", digest)
}

// Submit sends the current candidate and resolves the session to
// Succeeded or Failed. Only reachable from FileSelected, which in turn
// is only reachable through a valid verdict.
func (o *Orchestrator) Submit(ctx context.Context) (*domain.UploadReceipt, error) {
	o.mu.Lock()
	switch o.state {
	case StateUploading:
		o.mu.Unlock()
		o.log.Warn("Submit rejected, upload in flight")
		return nil, errors.ErrUploadInFlight
	case StateSucceeded, StateFailed:
		o.mu.Unlock()
		o.log.Warn("Submit rejected, session already resolved", "state", o.state.String())
		return nil, errors.ErrSessionResolved
	case StateIdle:
		o.mu.Unlock()
		o.log.Warn("Submit rejected, no candidate selected")
		return nil, errors.ErrNoFileSelected
	}

	file := o.file
	o.state = StateUploading
	o.mu.Unlock()

	o.log.Info("Uploading candidate", "file", file.Name)
	receipt, err := o.uploader.Upload(ctx, file)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.state = StateFailed
		o.failure = failureMessage(err)
		o.log.Error("Upload failed", "file", file.Name, "error", err)
		return nil, err
	}

	o.state = StateSucceeded
	o.receipt = receipt
	o.log.Info("Upload succeeded",
		"file", file.Name,
		"resume_id", receipt.ResumeID,
		"run_id", receipt.RunID,
		"stored_path", receipt.StoredPath,
	)
	return receipt, nil
}

// Reset discards the candidate, fingerprint, verdict and outcome, and
// returns to Idle. Rejected while an upload is in flight: the session
// can only be resolved, never abandoned mid-transfer.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateUploading {
		return errors.ErrUploadInFlight
	}

	o.state = StateIdle
	o.file = domain.CandidateFile{}
	o.hasFile = false
	o.verdict = domain.Verdict{}
	o.fingerprint = ""
	o.fpStatus = FingerprintNone
	o.receipt = nil
	o.failure = ""
	// Invalidate any fingerprint computation still running for the old candidate.
	o.generation++

	o.log.Debug("Session reset")
	return nil
}

// Snapshot returns an atomic copy of the current user-visible state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		State:   o.state,
		Verdict: o.verdict,
	}

	switch o.state {
	case StateFileSelected, StateUploading:
		if o.hasFile {
			file := o.file
			snap.File = &file
		}
		snap.Fingerprint = o.fingerprint
		snap.FingerprintStatus = o.fpStatus
	case StateSucceeded:
		snap.Receipt = o.receipt
		snap.Fingerprint = o.fingerprint
		snap.FingerprintStatus = o.fpStatus
	case StateFailed:
		snap.Failure = o.failure
	}

	return snap
}

// failureMessage extracts the user-facing message for the Failed state.
func failureMessage(err error) string {
	var upErr *domain.UploadError
	if stderrors.As(err, &upErr) {
		return upErr.Message
	}
	return err.Error()
}
