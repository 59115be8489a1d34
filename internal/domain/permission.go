package domain

import (
	"fmt"
	"strings"
)

// ClipboardWriteCapability is the permission name queried before a write.
const ClipboardWriteCapability = "clipboard-write"

// PermissionState is the host-reported authorization level for a capability.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionPrompt  PermissionState = "prompt"
	PermissionDenied  PermissionState = "denied"
)

// IsValid checks if the permission state is one of the known values.
func (p PermissionState) IsValid() bool {
	switch p {
	case PermissionGranted, PermissionPrompt, PermissionDenied:
		return true
	}
	return false
}

// AllowsWrite reports whether a write may be attempted in this state.
// A prompt state lets the host ask the user during the write itself.
func (p PermissionState) AllowsWrite() bool {
	return p == PermissionGranted || p == PermissionPrompt
}

// ParsePermissionState converts a string into a PermissionState.
func ParsePermissionState(s string) (PermissionState, error) {
	p := PermissionState(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q, expected granted, prompt or denied", ErrInvalidPermission, s)
	}
	return p, nil
}
