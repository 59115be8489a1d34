// Package clipboard places the value of a source element on the host
// clipboard after checking the clipboard-write permission.
//
// A copy is a two-step request/response flow: query the permission state,
// then write when the state is granted or prompt. Every failure ends the
// invocation, emits exactly one diagnostic and is returned as a *CopyError.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixbrock/lemonai/internal/domain"
)

// Source resolves an element identifier to its current text value.
type Source interface {
	Value(ctx context.Context, elementID string) (string, error)
}

// PermissionQuerier reports the host permission state for a capability.
type PermissionQuerier interface {
	Query(ctx context.Context, capability string) (domain.PermissionState, error)
}

// Writer places text on the host clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// QuerierFunc adapts a function to the PermissionQuerier interface.
type QuerierFunc func(ctx context.Context, capability string) (domain.PermissionState, error)

func (f QuerierFunc) Query(ctx context.Context, capability string) (domain.PermissionState, error) {
	return f(ctx, capability)
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Result describes a successful copy.
type Result struct {
	ElementID  string
	Permission domain.PermissionState
	Length     int
}

// Copier runs the permission-gated copy sequence.
type Copier struct {
	permissions PermissionQuerier
	writer      Writer
	logger      *slog.Logger
}

// NewCopier creates a Copier. A nil logger falls back to slog.Default().
func NewCopier(permissions PermissionQuerier, writer Writer, logger *slog.Logger) *Copier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Copier{
		permissions: permissions,
		writer:      writer,
		logger:      logger,
	}
}

// Copy reads elementID from source and writes its value to the clipboard.
// Nothing is retried and no state is kept between invocations.
func (c *Copier) Copy(ctx context.Context, source Source, elementID string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &CopyError{
				Kind:      KindOther,
				ElementID: elementID,
				Err:       fmt.Errorf("panic: %v", r),
			}
		}
		if err != nil {
			c.report(ctx, err)
		}
	}()

	text, err := source.Value(ctx, elementID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingElement) {
			return nil, &CopyError{Kind: KindMissingElement, ElementID: elementID, Err: err}
		}
		return nil, &CopyError{Kind: KindOther, ElementID: elementID, Err: fmt.Errorf("read element: %w", err)}
	}

	state, err := c.permissions.Query(ctx, domain.ClipboardWriteCapability)
	if err != nil {
		return nil, &CopyError{Kind: KindOther, ElementID: elementID, Err: fmt.Errorf("query permission: %w", err)}
	}

	if !state.AllowsWrite() {
		return nil, &CopyError{Kind: KindPermissionDenied, ElementID: elementID, Permission: state}
	}

	if err := c.writer.WriteText(ctx, text); err != nil {
		return nil, &CopyError{Kind: KindWriteFailed, ElementID: elementID, Permission: state, Err: err}
	}

	return &Result{
		ElementID:  elementID,
		Permission: state,
		Length:     len(text),
	}, nil
}

// report emits the single diagnostic for a failed invocation.
func (c *Copier) report(ctx context.Context, err error) {
	var copyErr *CopyError
	if !errors.As(err, &copyErr) {
		c.logger.ErrorContext(ctx, "Error in copying text", "error", err)
		return
	}

	if copyErr.Kind == KindPermissionDenied {
		c.logger.WarnContext(ctx, "Clipboard write permission denied",
			"element_id", copyErr.ElementID,
			"permission", string(copyErr.Permission),
		)
		return
	}

	c.logger.ErrorContext(ctx, "Error in copying text",
		"kind", string(copyErr.Kind),
		"element_id", copyErr.ElementID,
		"error", copyErr.Err,
	)
}
