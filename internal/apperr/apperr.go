package apperr

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with
// fmt.Errorf("...: %w", ...) so callers branch with errors.Is while keeping
// the original context in the message.
var (
	// ErrNotFound marks a referenced document/folder that is absent or not
	// owned by the caller. Cross-owner rows are reported as not found, never
	// as forbidden.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks empty names/filenames, malformed membership sets,
	// unknown enum values and oversized uploads.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateName marks a folder (or username) collision within an owner
	// scope.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrConflict marks a concurrent mutation invalidated by the transaction
	// isolation check (first committer wins).
	ErrConflict = errors.New("conflict")

	// ErrUpstream marks an OCR or export collaborator failure, opaque to the
	// core.
	ErrUpstream = errors.New("upstream failure")
)
