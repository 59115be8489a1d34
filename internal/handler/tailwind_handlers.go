package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/felixbrock/lemonai/internal/handler/dto"
	"github.com/felixbrock/lemonai/internal/tailwind"
)

// handleListVariants lists the style-build presets.
// @Summary List style-build variants
// @Tags tailwind
// @Produce json
// @Success 200 {object} dto.VariantsResponse
// @Router /tailwind [get]
func (h *Handler) handleListVariants(w http.ResponseWriter, r *http.Request) {
	resp := dto.VariantsResponse{Default: string(h.variant)}
	for _, v := range tailwind.Variants() {
		resp.Variants = append(resp.Variants, string(v))
	}
	respondJSON(w, http.StatusOK, resp)
}

// handleGetDescriptor returns a resolved style-build descriptor.
// @Summary Get style-build descriptor
// @Description Returns the descriptor with default font stacks expanded
// @Tags tailwind
// @Produce json
// @Param variant path string true "Variant: components, components-wide, templates"
// @Success 200 {object} tailwind.Resolved
// @Failure 404 {object} dto.ErrorResponse
// @Router /tailwind/{variant} [get]
func (h *Handler) handleGetDescriptor(w http.ResponseWriter, r *http.Request) {
	d, err := tailwind.ForVariant(tailwind.Variant(r.PathValue("variant")))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, d.Resolve())
}

// handleTailwindConfig renders tailwind.config.js for ?variant= or the
// configured default.
func (h *Handler) handleTailwindConfig(w http.ResponseWriter, r *http.Request) {
	variant := h.variant
	if v := r.URL.Query().Get("variant"); v != "" {
		variant = tailwind.Variant(v)
	}

	d, err := tailwind.ForVariant(variant)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := d.RenderJS(&buf); err != nil {
		slog.Error("failed to render tailwind config", "error", err, "variant", string(variant))
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

