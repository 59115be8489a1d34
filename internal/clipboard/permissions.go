package clipboard

import (
	"context"
	"fmt"

	"github.com/felixbrock/lemonai/internal/domain"
)

// StaticPermissions answers every clipboard-write query with a fixed state.
type StaticPermissions struct {
	state domain.PermissionState
}

// NewStaticPermissions creates a querier that always reports state.
func NewStaticPermissions(state domain.PermissionState) (*StaticPermissions, error) {
	if !state.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPermission, state)
	}
	return &StaticPermissions{state: state}, nil
}

// Query returns the configured state. Capabilities other than
// clipboard-write are not known to this host.
func (p *StaticPermissions) Query(ctx context.Context, capability string) (domain.PermissionState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if capability != domain.ClipboardWriteCapability {
		return "", fmt.Errorf("unknown permission capability %q", capability)
	}
	return p.state, nil
}

var _ PermissionQuerier = (*StaticPermissions)(nil)
