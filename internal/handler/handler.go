package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/felixbrock/lemonai/docs" // Import generated docs
	"github.com/felixbrock/lemonai/internal/clipboard"
	"github.com/felixbrock/lemonai/internal/database"
	"github.com/felixbrock/lemonai/internal/domain"
	"github.com/felixbrock/lemonai/internal/handler/dto"
	"github.com/felixbrock/lemonai/internal/middleware"
	"github.com/felixbrock/lemonai/internal/repository"
	"github.com/felixbrock/lemonai/internal/service"
	"github.com/felixbrock/lemonai/internal/static"
	"github.com/felixbrock/lemonai/internal/tailwind"
)

// Options configure the clipboard policy and style-build preset.
type Options struct {
	// Permission is reported for every clipboard-write query.
	Permission domain.PermissionState
	// Variant is the style-build preset served when none is requested.
	Variant tailwind.Variant
	// TrustProxy treats X-Forwarded-Proto: https as a secure context.
	TrustProxy bool
	// Writer is the host clipboard; nil uses the system clipboard.
	Writer clipboard.Writer
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool          *pgxpool.Pool
	copyService   *service.CopyService
	eventRepo     *repository.CopyEventRepository
	secureContext *middleware.SecureContext
	variant       tailwind.Variant
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool, opts Options) (*Handler, error) {
	if _, err := tailwind.VariantOptions(opts.Variant); err != nil {
		return nil, err
	}

	permissions, err := clipboard.NewStaticPermissions(opts.Permission)
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	if writer == nil {
		writer = clipboard.NewSystemWriter()
	}

	// Create repositories
	eventRepo := repository.NewCopyEventRepository(pool)

	// Create services
	copier := clipboard.NewCopier(permissions, clipboard.NewSecureWriter(writer, middleware.IsSecure), slog.Default())
	copyService := service.NewCopyService(copier, eventRepo)

	return &Handler{
		pool:          pool,
		copyService:   copyService,
		eventRepo:     eventRepo,
		secureContext: middleware.NewSecureContext(opts.TrustProxy),
		variant:       opts.Variant,
	}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Prompt editor page and browser scripts
	mux.HandleFunc("GET /{$}", h.handleIndex)
	libs, err := fs.Sub(static.Libs, "libs")
	if err != nil {
		panic(fmt.Sprintf("static libs: %v", err))
	}
	mux.Handle("GET /static/libs/", http.StripPrefix("/static/libs/", http.FileServerFS(libs)))

	// Style-build descriptor
	mux.HandleFunc("GET /tailwind.config.js", h.handleTailwindConfig)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API v1 routes
	mux.Handle("POST /api/v1/clipboard/copy", h.secureContext.Detect(http.HandlerFunc(h.handleCopy)))
	mux.HandleFunc("GET /api/v1/clipboard/events", h.handleListCopyEvents)
	mux.HandleFunc("GET /api/v1/clipboard/events/{id}", h.handleGetCopyEvent)
	mux.HandleFunc("GET /api/v1/tailwind", h.handleListVariants)
	mux.HandleFunc("GET /api/v1/tailwind/{variant}", h.handleGetDescriptor)
}

// handleHealthz returns 200 OK with the schema version if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	version, err := database.SchemaVersion(ctx, h.pool)
	if err != nil {
		slog.Error("schema version check failed", "error", err)
		http.Error(w, "schema unavailable", http.StatusServiceUnavailable)
		return
	}

	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", SchemaVersion: version})
}

// handleIndex serves the embedded prompt editor page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.IndexHTML))
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err through dto.MapDomainError.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractEventID extracts and validates the event ID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractEventID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "event id is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "event id must be a valid UUID")
		return "", false
	}

	return id, true
}
