package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/felixbrock/lemonai/internal/clipboard"
	"github.com/felixbrock/lemonai/internal/domain"
)

// EventRecorder persists copy history entries.
type EventRecorder interface {
	Create(ctx context.Context, event *domain.CopyEvent) error
}

// CopyService runs clipboard copies and records each invocation.
type CopyService struct {
	copier   *clipboard.Copier
	recorder EventRecorder
}

// NewCopyService creates a new CopyService. recorder may be nil, in which
// case no history is kept.
func NewCopyService(copier *clipboard.Copier, recorder EventRecorder) *CopyService {
	return &CopyService{
		copier:   copier,
		recorder: recorder,
	}
}

// Copy copies elementID from source to the clipboard. The returned event
// describes the invocation whether or not it succeeded; the error is the
// copy failure, if any. A failure to record history is logged only.
func (s *CopyService) Copy(ctx context.Context, source clipboard.Source, elementID string) (*domain.CopyEvent, error) {
	result, copyErr := s.copier.Copy(ctx, source, elementID)

	event := newCopyEvent(elementID, result, copyErr)

	if s.recorder != nil {
		if err := s.recorder.Create(ctx, event); err != nil {
			slog.ErrorContext(ctx, "failed to record copy event",
				"error", err,
				"source_id", elementID,
				"outcome", string(event.Outcome),
			)
		}
	}

	if copyErr != nil {
		return event, copyErr
	}

	slog.InfoContext(ctx, "text copied to clipboard",
		"source_id", elementID,
		"permission", string(result.Permission),
		"content_length", result.Length,
	)
	return event, nil
}

func newCopyEvent(elementID string, result *clipboard.Result, copyErr error) *domain.CopyEvent {
	event := &domain.CopyEvent{SourceID: elementID}

	if copyErr == nil {
		permission := result.Permission
		event.Permission = &permission
		event.Outcome = domain.CopyOutcomeCopied
		event.ContentLength = result.Length
		return event
	}

	event.Outcome = domain.CopyOutcomeFailed
	event.ErrorMessage = copyErr.Error()

	var ce *clipboard.CopyError
	if errors.As(copyErr, &ce) {
		event.Outcome = ce.Outcome()
		if ce.Permission != "" {
			permission := ce.Permission
			event.Permission = &permission
		}
	}
	return event
}
