package usecase

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrEmptyProfile means no skill in the request resolved to a known
	// skill with a stored embedding.
	ErrEmptyProfile = errors.New("empty skill profile")

	// ErrOccupationNotFound is fatal to a skill-gap call.
	ErrOccupationNotFound = errors.New("occupation not found")

	// ErrLimitOutOfRange is returned for a negative limit or one above the
	// hard cap. Zero means the configured default.
	ErrLimitOutOfRange = errors.New("limit out of range")

	ErrInvalidInput = errors.New("invalid input")
	ErrNoteNotFound = errors.New("note not found")

	// ErrStoreUnavailable marks transient infrastructure failure so callers
	// can decide to retry; the engine itself never retries.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrInternal = errors.New("internal error")
)

// classifyStoreErr maps a repository failure to the two failure kinds callers
// see: transient unavailability versus everything else.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrStoreUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrStoreUnavailable
	}
	return ErrInternal
}
