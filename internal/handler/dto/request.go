package dto

// CopyRequest represents the request body for POST /clipboard/copy.
type CopyRequest struct {
	// SourceID names the field to copy; defaults to "prompt".
	SourceID string `json:"source_id"`
	// Fields holds the current values of the page's input elements.
	Fields map[string]string `json:"fields"`
}

// ListCopyEventsFilters represents query parameters for GET /clipboard/events.
type ListCopyEventsFilters struct {
	Outcome  *string // ?outcome=copied
	SourceID *string // ?source_id=prompt
	Limit    int     // ?limit=50
	Offset   int     // ?offset=0
}
