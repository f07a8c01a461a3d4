package nutrition

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/FireBushtree/stronger-body/internal/ingest"
)

// Handler contains the HTTP handlers for the nutrition trend.
type Handler struct {
	store   *Store
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(store *Store, service *Service) *Handler {
	return &Handler{store: store, service: service}
}

// HandleLog handles POST /v1/nutrition/log — the AI intake-logging flow.
func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	record, err := h.service.LogIntake(r.Context(), req.Food)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			writeError(w, http.StatusBadRequest, "empty_input", "Describe what you ate")
		case errors.Is(err, ErrProfileRequired):
			writeError(w, http.StatusConflict, "profile_incomplete", "Fill in the body profile first")
		case errors.Is(err, ingest.ErrNoJSONObject):
			writeError(w, http.StatusBadGateway, "agent_extraction_failed", "Agent reply contained no JSON object")
		case errors.Is(err, ingest.ErrInvalidJSON):
			writeError(w, http.StatusBadGateway, "agent_parse_failed", "Agent reply was not valid JSON")
		case errors.Is(err, ErrNotPersisted):
			writeError(w, http.StatusInternalServerError, "storage_error", "Failed to persist nutrition record")
		default:
			writeError(w, http.StatusBadGateway, "agent_failed", "Agent call failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// HandleNutrition handles POST /v1/nutrition (manual entry) and
// GET /v1/nutrition?from=&to=.
func (h *Handler) HandleNutrition(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleAdd(w, r)
	case http.MethodGet:
		h.handleRange(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	}
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	if _, err := time.Parse(datestore.DateLayout, req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", "Date must be YYYY-MM-DD")
		return
	}
	if req.Calories < 0 || req.Protein < 0 || req.Fat < 0 || req.Carbohydrates < 0 {
		writeError(w, http.StatusBadRequest, "invalid_value", "Intake values must not be negative")
		return
	}

	record := NutritionRecord{
		Date:          req.Date,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Fat:           req.Fat,
		Carbohydrates: req.Carbohydrates,
	}
	if !h.store.Add(r.Context(), record) {
		writeError(w, http.StatusInternalServerError, "storage_error", "Failed to persist nutrition record")
		return
	}

	stored, _ := h.store.days.Get(r.Context(), req.Date)
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !validRange(from, to) {
		writeError(w, http.StatusBadRequest, "invalid_range", "from/to must be YYYY-MM-DD and from <= to")
		return
	}

	writeJSON(w, http.StatusOK, RecordsResponse{Records: h.store.Range(r.Context(), from, to)})
}

// HandleToday handles GET /v1/nutrition/today.
func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	record, ok := h.store.Today(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "No intake recorded today")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// HandleRecent handles GET /v1/nutrition/recent?days=N (default 7).
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		days = 7
	}
	writeJSON(w, http.StatusOK, RecordsResponse{Records: h.store.Recent(r.Context(), days)})
}

func validRange(from, to string) bool {
	if _, err := time.Parse(datestore.DateLayout, from); err != nil {
		return false
	}
	if _, err := time.Parse(datestore.DateLayout, to); err != nil {
		return false
	}
	return from <= to
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
