package dto

import (
	"time"

	"github.com/felixbrock/lemonai/internal/domain"
)

// CopyEventResponse represents one copy invocation.
type CopyEventResponse struct {
	ID            string    `json:"id"`
	SourceID      string    `json:"source_id"`
	Permission    *string   `json:"permission"`
	Outcome       string    `json:"outcome"`
	ContentLength int       `json:"content_length"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CopyEventsListResponse represents the response for GET /clipboard/events.
type CopyEventsListResponse struct {
	Events []CopyEventResponse `json:"events"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// VariantsResponse lists the available style-build presets.
type VariantsResponse struct {
	Variants []string `json:"variants"`
	Default  string   `json:"default"`
}

// HealthResponse reports database reachability and schema state.
type HealthResponse struct {
	Status        string `json:"status"`
	SchemaVersion int64  `json:"schema_version"`
}

// ToCopyEventResponse converts domain.CopyEvent to CopyEventResponse.
func ToCopyEventResponse(event *domain.CopyEvent) CopyEventResponse {
	var permission *string
	if event.Permission != nil {
		p := string(*event.Permission)
		permission = &p
	}

	return CopyEventResponse{
		ID:            event.ID,
		SourceID:      event.SourceID,
		Permission:    permission,
		Outcome:       string(event.Outcome),
		ContentLength: event.ContentLength,
		ErrorMessage:  event.ErrorMessage,
		CreatedAt:     event.CreatedAt,
	}
}
