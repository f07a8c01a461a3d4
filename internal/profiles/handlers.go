package profiles

import (
	"encoding/json"
	"net/http"
)

// Handler contains the HTTP handlers for the user profile.
type Handler struct {
	store *Store
}

// NewHandler creates a new handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// HandleProfile handles GET/PUT /v1/profile.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handleSet(w, r)
	default:
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.store.Get(r.Context())
	if !ok {
		h.sendJSON(w, http.StatusOK, ProfileResponse{Profile: nil, Complete: false})
		return
	}

	h.sendJSON(w, http.StatusOK, ProfileResponse{
		Profile:  profile,
		Complete: profile.Complete(),
	})
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	if update.Height < 0 || update.Age < 0 || update.CurrentWeight < 0 || update.TargetWeight < 0 {
		h.sendError(w, http.StatusBadRequest, "invalid_value", "Body measurements must be positive")
		return
	}
	if update.Gender != "" && update.Gender != GenderMale && update.Gender != GenderFemale {
		h.sendError(w, http.StatusBadRequest, "invalid_gender", "Gender must be male or female")
		return
	}
	if update.WeeklyWorkIntensity != "" {
		if _, ok := intensityMultipliers[update.WeeklyWorkIntensity]; !ok {
			h.sendError(w, http.StatusBadRequest, "invalid_intensity", "Unknown weekly work intensity")
			return
		}
	}

	if !h.store.Set(r.Context(), update) {
		h.sendError(w, http.StatusInternalServerError, "storage_error", "Failed to persist profile")
		return
	}

	profile, _ := h.store.Get(r.Context())
	h.sendJSON(w, http.StatusOK, ProfileResponse{
		Profile:  profile,
		Complete: profile.Complete(),
	})
}

// HandleTargets handles GET /v1/profile/targets.
func (h *Handler) HandleTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	profile, ok := h.store.Get(r.Context())
	if !ok || !profile.Complete() {
		h.sendError(w, http.StatusConflict, "profile_incomplete", "Fill in the body profile first")
		return
	}

	h.sendJSON(w, http.StatusOK, DeriveTargets(profile))
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
