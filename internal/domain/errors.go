package domain

import "errors"

// Domain-specific errors for clipboard and style-build operations.
var (
	// Clipboard errors
	ErrPermissionDenied     = errors.New("clipboard write permission denied")
	ErrClipboardWriteFailed = errors.New("clipboard write failed")
	ErrMissingElement       = errors.New("source element not found")
	ErrUnexpectedFailure    = errors.New("unexpected clipboard failure")
	ErrInsecureContext      = errors.New("clipboard write requires a secure context")
	ErrClipboardUnsupported = errors.New("clipboard not supported on this host")

	// Copy history errors
	ErrCopyEventNotFound = errors.New("copy event not found")

	// Style-build errors
	ErrUnknownVariant    = errors.New("unknown style-build variant")
	ErrInvalidDescriptor = errors.New("invalid style-build descriptor")

	// Validation errors
	ErrInvalidPermission = errors.New("invalid permission state")
	ErrInvalidOutcome    = errors.New("invalid copy outcome")
)
