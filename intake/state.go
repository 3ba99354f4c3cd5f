package intake

import "resume-intake/domain"

// State is the orchestrator's position in one upload session.
type State int

const (
	StateIdle State = iota
	StateFileSelected
	StateUploading
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file_selected"
	case StateUploading:
		return "uploading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FingerprintStatus distinguishes a fingerprint that is still computing
// from one that could not be computed at all.
type FingerprintStatus int

const (
	FingerprintNone FingerprintStatus = iota
	FingerprintComputing
	FingerprintReady
	FingerprintUnavailable
)

func (s FingerprintStatus) String() string {
	switch s {
	case FingerprintComputing:
		return "computing"
	case FingerprintReady:
		return "ready"
	case FingerprintUnavailable:
		return "unavailable"
	default:
		return "none"
	}
}

// Snapshot is an atomic copy of the orchestrator's user-visible state.
// File is only populated while a candidate is held (selected/uploading);
// Receipt only in StateSucceeded; Failure only in StateFailed.
type Snapshot struct {
	State             State
	File              *domain.CandidateFile
	Verdict           domain.Verdict
	Fingerprint       string
	FingerprintStatus FingerprintStatus
	Receipt           *domain.UploadReceipt
	Failure           string
}
