package clipboard

import (
	"context"
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/felixbrock/lemonai/internal/domain"
)

// SystemWriter writes to the operating system clipboard.
type SystemWriter struct{}

// NewSystemWriter creates a SystemWriter.
func NewSystemWriter() *SystemWriter {
	return &SystemWriter{}
}

// WriteText places text on the OS clipboard via the platform helper
// (pbcopy, xclip, xsel, wl-copy or the Windows clipboard API).
func (w *SystemWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("%w: %s", domain.ErrClipboardUnsupported, runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

var _ Writer = (*SystemWriter)(nil)
