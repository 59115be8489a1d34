package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/felixbrock/lemonai/internal/clipboard"
	"github.com/felixbrock/lemonai/internal/config"
	"github.com/felixbrock/lemonai/internal/domain"
	"github.com/felixbrock/lemonai/internal/handler/dto"
	"github.com/felixbrock/lemonai/internal/repository"
)

// maxCopyRequestBytes bounds the copy request body.
const maxCopyRequestBytes = 1 << 20

// handleCopy copies a submitted field to the host clipboard.
// @Summary Copy a field to the clipboard
// @Description Checks the clipboard-write permission and writes the field value to the host clipboard
// @Tags clipboard
// @Accept json
// @Produce json
// @Param request body dto.CopyRequest true "Fields and source element"
// @Success 200 {object} dto.CopyEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /clipboard/copy [post]
func (h *Handler) handleCopy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CopyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCopyRequestBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	sourceID := req.SourceID
	if sourceID == "" {
		sourceID = config.DefaultSourceElement
	}

	event, err := h.copyService.Copy(ctx, clipboard.MapSource(req.Fields), sourceID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCopyEventResponse(event))
}

// handleListCopyEvents returns the copy history, newest first.
// @Summary List copy events
// @Tags clipboard
// @Produce json
// @Param outcome query string false "Filter by outcome"
// @Param source_id query string false "Filter by source element"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.CopyEventsListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /clipboard/events [get]
func (h *Handler) handleListCopyEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := parseListCopyEventsFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	repoFilters := repository.CopyEventFilters{
		SourceID: filters.SourceID,
		Limit:    filters.Limit,
		Offset:   filters.Offset,
	}
	if filters.Outcome != nil {
		outcome := domain.CopyOutcome(*filters.Outcome)
		if !outcome.IsValid() {
			respondDomainError(w, fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, *filters.Outcome))
			return
		}
		repoFilters.Outcome = &outcome
	}

	events, total, err := h.eventRepo.List(ctx, repoFilters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := dto.CopyEventsListResponse{
		Events: make([]dto.CopyEventResponse, 0, len(events)),
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	}
	for _, event := range events {
		resp.Events = append(resp.Events, dto.ToCopyEventResponse(event))
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleGetCopyEvent returns a single copy event.
// @Summary Get copy event
// @Tags clipboard
// @Produce json
// @Param id path string true "Event UUID"
// @Success 200 {object} dto.CopyEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clipboard/events/{id} [get]
func (h *Handler) handleGetCopyEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := extractEventID(w, r)
	if !ok {
		return
	}

	event, err := h.eventRepo.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCopyEventResponse(event))
}

func parseListCopyEventsFilters(r *http.Request) (dto.ListCopyEventsFilters, error) {
	query := r.URL.Query()
	filters := dto.ListCopyEventsFilters{Limit: config.DefaultEventsLimit}

	if v := query.Get("outcome"); v != "" {
		filters.Outcome = &v
	}
	if v := query.Get("source_id"); v != "" {
		filters.SourceID = &v
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > config.MaxEventsLimit {
			return filters, fmt.Errorf("limit must be between 1 and %d", config.MaxEventsLimit)
		}
		filters.Limit = limit
	}

	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filters, fmt.Errorf("offset must be a non-negative integer")
		}
		filters.Offset = offset
	}

	return filters, nil
}
