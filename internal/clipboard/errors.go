package clipboard

import (
	"errors"
	"fmt"

	"github.com/felixbrock/lemonai/internal/domain"
)

// Kind classifies why a copy failed.
type Kind string

const (
	KindPermissionDenied Kind = "permissionDenied"
	KindWriteFailed      Kind = "writeFailed"
	KindMissingElement   Kind = "missingElement"
	KindOther            Kind = "other"
)

// CopyError is the error result of a failed copy.
type CopyError struct {
	Kind       Kind
	ElementID  string
	Permission domain.PermissionState // empty if the query never completed
	Err        error
}

func (e *CopyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("copy %q: %v", e.ElementID, e.sentinel())
	}
	if errors.Is(e.Err, e.sentinel()) {
		return fmt.Sprintf("copy %q: %v", e.ElementID, e.Err)
	}
	return fmt.Sprintf("copy %q: %v: %v", e.ElementID, e.sentinel(), e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *CopyError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

// Outcome maps the failure kind to the recorded copy outcome.
func (e *CopyError) Outcome() domain.CopyOutcome {
	switch e.Kind {
	case KindPermissionDenied:
		return domain.CopyOutcomePermissionDenied
	case KindWriteFailed:
		return domain.CopyOutcomeWriteFailed
	case KindMissingElement:
		return domain.CopyOutcomeMissingElement
	default:
		return domain.CopyOutcomeFailed
	}
}

func (e *CopyError) sentinel() error {
	switch e.Kind {
	case KindPermissionDenied:
		return domain.ErrPermissionDenied
	case KindWriteFailed:
		return domain.ErrClipboardWriteFailed
	case KindMissingElement:
		return domain.ErrMissingElement
	default:
		return domain.ErrUnexpectedFailure
	}
}
