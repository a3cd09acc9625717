package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrPageNotRegistered means no credential exists for the given page.
	ErrPageNotRegistered = errors.New("page not registered")
	// ErrNoLinkedAccount means a secondary-platform publish was requested but
	// the page has no linked Instagram account.
	ErrNoLinkedAccount = errors.New("no instagram account linked to this page")
	// ErrNothingToPost means the multi-asset flow produced no media and no
	// text; no remote call is made.
	ErrNothingToPost = errors.New("nothing to post")
	// ErrUnauthorized means the session credential is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports malformed input. It never reaches the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// ScheduleReason classifies a schedule validation failure.
type ScheduleReason string

const (
	ScheduleMissing    ScheduleReason = "missing"
	ScheduleNotANumber ScheduleReason = "not_a_number"
	ScheduleTooSoon    ScheduleReason = "too_soon"
	ScheduleTooLate    ScheduleReason = "too_late"
)

// InvalidScheduleError reports a requested publish time outside the allowed
// window.
type InvalidScheduleError struct {
	Reason ScheduleReason
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule: %s", e.Reason)
}

// UploadFailedError reports which source item failed during the multi-asset
// flow. Err wraps the transport error carrying the raw provider payload.
type UploadFailedError struct {
	Source string
	Err    error
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("upload failed for %q: %v", e.Source, e.Err)
}

func (e *UploadFailedError) Unwrap() error { return e.Err }

// RemoteAPIError reports a failed final create-post or publish call. When a
// container was already created, CreationID identifies the orphaned remote
// artifact for diagnostic recovery; nothing is cleaned up automatically.
type RemoteAPIError struct {
	CreationID string
	Err        error
}

func (e *RemoteAPIError) Error() string {
	if e.CreationID != "" {
		return fmt.Sprintf("remote api error (creation_id=%s): %v", e.CreationID, e.Err)
	}
	return fmt.Sprintf("remote api error: %v", e.Err)
}

func (e *RemoteAPIError) Unwrap() error { return e.Err }
