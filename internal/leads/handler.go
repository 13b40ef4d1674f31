package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hke-expeditions/trip-backend/internal/sheets"
	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

// Inserter is the surface the HTTP layer needs from the lead service.
type Inserter interface {
	InsertLead(ctx context.Context, raw map[string]any) (*Record, error)
}

// Handler handles HTTP requests for leads
type Handler struct {
	svc    Inserter
	logger *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(svc Inserter, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// CreateLead handles POST /api/leads requests. The payload is an open map
// on purpose: normalization absorbs whatever shape the form sends, so the
// only client error here is JSON that does not parse at all.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.logger.Error("failed to decode lead payload", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request_body"})
		return
	}

	if _, err := h.svc.InsertLead(r.Context(), raw); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

// writeError maps a classified writer failure onto an HTTP status. Only
// the error kind and request id reach the client; the wrapped cause is
// logged server-side.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := classify(err)
	reqID := chimiddleware.GetReqID(r.Context())
	h.logger.Error("lead insert failed",
		"error", err,
		"kind", kind,
		"request_id", reqID,
	)
	writeJSON(w, status, map[string]string{
		"error":      kind,
		"request_id": reqID,
	})
}

func classify(err error) (string, int) {
	var cfgErr *sheets.ConfigurationError
	var sinkErr *sheets.SinkUnavailableError
	var writeErr *sheets.WriteError
	switch {
	case errors.As(err, &cfgErr):
		return "configuration_error", http.StatusInternalServerError
	case errors.As(err, &sinkErr):
		return "sink_unavailable", http.StatusBadGateway
	case errors.As(err, &writeErr):
		return "write_error", http.StatusBadGateway
	default:
		return "internal_error", http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
