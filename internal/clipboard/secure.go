package clipboard

import (
	"context"

	"github.com/felixbrock/lemonai/internal/domain"
)

// SecureWriter only forwards writes issued from a secure transport context.
type SecureWriter struct {
	next     Writer
	isSecure func(ctx context.Context) bool
}

// NewSecureWriter wraps next. isSecure decides per call whether the
// calling context is secure.
func NewSecureWriter(next Writer, isSecure func(ctx context.Context) bool) *SecureWriter {
	return &SecureWriter{
		next:     next,
		isSecure: isSecure,
	}
}

// WriteText fails with domain.ErrInsecureContext outside a secure context.
func (w *SecureWriter) WriteText(ctx context.Context, text string) error {
	if !w.isSecure(ctx) {
		return domain.ErrInsecureContext
	}
	return w.next.WriteText(ctx, text)
}

var _ Writer = (*SecureWriter)(nil)
