package domain

import "time"

// CopyOutcome is the terminal result of one copy invocation.
type CopyOutcome string

const (
	CopyOutcomeCopied           CopyOutcome = "copied"
	CopyOutcomePermissionDenied CopyOutcome = "permission_denied"
	CopyOutcomeWriteFailed      CopyOutcome = "write_failed"
	CopyOutcomeMissingElement   CopyOutcome = "missing_element"
	CopyOutcomeFailed           CopyOutcome = "failed"
)

// IsValid checks if the outcome is one of the known values.
func (o CopyOutcome) IsValid() bool {
	switch o {
	case CopyOutcomeCopied, CopyOutcomePermissionDenied, CopyOutcomeWriteFailed,
		CopyOutcomeMissingElement, CopyOutcomeFailed:
		return true
	}
	return false
}

// CopyEvent is the history entry recorded for each copy invocation.
// The copied text itself is never stored, only its length.
type CopyEvent struct {
	ID            string
	SourceID      string
	Permission    *PermissionState // nil when the query never completed
	Outcome       CopyOutcome
	ContentLength int
	ErrorMessage  string
	CreatedAt     time.Time
}

// Succeeded returns true if the text reached the clipboard.
func (e *CopyEvent) Succeeded() bool {
	return e.Outcome == CopyOutcomeCopied
}
