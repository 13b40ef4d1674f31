package planner

import (
	"encoding/json"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

// Handler handles the AI itinerary HTTP endpoints.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a planner handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// GeneratePlan handles POST /api/ai/plan requests.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode plan request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request_body"})
		return
	}
	if strings.TrimSpace(req.Destination) == "" || req.Days <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "destination and days are required"})
		return
	}

	text, err := h.svc.GeneratePlan(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, PlanResponse{ItineraryText: text})
}

// EditItinerary handles POST /api/ai/chat requests.
func (h *Handler) EditItinerary(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request_body"})
		return
	}
	if strings.TrimSpace(req.CurrentItinerary) == "" || strings.TrimSpace(req.UserMessage) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "current_itinerary and user_message are required"})
		return
	}

	text, err := h.svc.EditItinerary(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{UpdatedItinerary: text})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := chimiddleware.GetReqID(r.Context())
	h.logger.Error("planner request failed", "error", err, "request_id", reqID)
	writeJSON(w, http.StatusBadGateway, map[string]string{
		"error":      "planner_unavailable",
		"request_id": reqID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
