package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/felixbrock/lemonai/internal/domain"
)

// StdinElement is the FileSource element id that reads standard input.
const StdinElement = "-"

// MapSource resolves element ids from an in-memory set of field values,
// such as the fields of a submitted form.
type MapSource map[string]string

// Value returns the field value or ErrMissingElement.
func (s MapSource) Value(_ context.Context, elementID string) (string, error) {
	v, ok := s[elementID]
	if !ok {
		return "", missingElement(elementID)
	}
	return v, nil
}

// FileSource treats the element id as a file path. StdinElement reads Stdin.
type FileSource struct {
	Stdin io.Reader
}

// Value reads the whole file (or stdin) as the element text.
func (s FileSource) Value(ctx context.Context, elementID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if elementID == StdinElement {
		if s.Stdin == nil {
			return "", missingElement(elementID)
		}
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(elementID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", missingElement(elementID)
		}
		return "", fmt.Errorf("read %s: %w", elementID, err)
	}
	return string(data), nil
}

func missingElement(elementID string) error {
	return fmt.Errorf("%w: %q", domain.ErrMissingElement, elementID)
}
