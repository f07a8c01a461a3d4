package plans

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FireBushtree/stronger-body/internal/ingest"
)

// Handler contains the HTTP handlers for today's plans.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGenerateDiet handles POST /v1/plans/diet/generate.
func (h *Handler) HandleGenerateDiet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	slot, err := h.service.GenerateDiet(r.Context())
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

// HandleGenerateWorkout handles POST /v1/plans/workout/generate.
func (h *Handler) HandleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	slot, err := h.service.GenerateWorkout(r.Context())
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

// HandleDietToday handles GET/DELETE /v1/plans/diet/today.
func (h *Handler) HandleDietToday(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		slot, ok := h.service.DietStore().Today(r.Context())
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "No diet plan for today")
			return
		}
		writeJSON(w, http.StatusOK, slot)
	case http.MethodDelete:
		if !h.service.DietStore().Clear(r.Context()) {
			writeError(w, http.StatusInternalServerError, "storage_error", "Failed to clear diet plan")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	}
}

// HandleWorkoutToday handles GET/DELETE /v1/plans/workout/today.
func (h *Handler) HandleWorkoutToday(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		slot, ok := h.service.WorkoutStore().Today(r.Context())
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "No workout plan for today")
			return
		}
		writeJSON(w, http.StatusOK, slot)
	case http.MethodDelete:
		if !h.service.WorkoutStore().Clear(r.Context()) {
			writeError(w, http.StatusInternalServerError, "storage_error", "Failed to clear workout plan")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	}
}

func writeFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProfileRequired):
		writeError(w, http.StatusConflict, "profile_incomplete", "Fill in the body profile first")
	case errors.Is(err, ingest.ErrNoJSONObject):
		writeError(w, http.StatusBadGateway, "agent_extraction_failed", "Agent reply contained no JSON object")
	case errors.Is(err, ingest.ErrInvalidJSON):
		writeError(w, http.StatusBadGateway, "agent_parse_failed", "Agent reply was not valid JSON")
	case errors.Is(err, ErrNotPersisted):
		writeError(w, http.StatusInternalServerError, "storage_error", "Failed to persist plan")
	default:
		writeError(w, http.StatusBadGateway, "agent_failed", "Agent call failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
