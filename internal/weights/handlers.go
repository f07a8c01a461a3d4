package weights

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/FireBushtree/stronger-body/internal/profiles"
)

// Handler contains the HTTP handlers for the weight trend.
type Handler struct {
	store    *Store
	profiles *profiles.Store
}

// NewHandler creates a new handler. profileStore may be nil; when present,
// saving today's weigh-in also refreshes the profile's current weight.
func NewHandler(store *Store, profileStore *profiles.Store) *Handler {
	return &Handler{store: store, profiles: profileStore}
}

// HandleWeights handles POST /v1/weights and GET /v1/weights?from=&to=.
func (h *Handler) HandleWeights(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleAdd(w, r)
	case http.MethodGet:
		h.handleRange(w, r)
	default:
		sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	}
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	if _, err := time.Parse(datestore.DateLayout, req.Date); err != nil {
		sendError(w, http.StatusBadRequest, "invalid_date", "Date must be YYYY-MM-DD")
		return
	}
	if req.Weight <= 0 {
		sendError(w, http.StatusBadRequest, "invalid_weight", "Weight must be positive")
		return
	}

	record := WeightRecord{
		Date:      req.Date,
		Weight:    req.Weight,
		IsFasting: req.IsFasting,
		Note:      req.Note,
	}
	if !h.store.Add(r.Context(), record) {
		sendError(w, http.StatusInternalServerError, "storage_error", "Failed to persist weight record")
		return
	}

	// Today's weigh-in is also the profile's current weight.
	if h.profiles != nil && req.Date == time.Now().Format(datestore.DateLayout) {
		h.profiles.UpdateCurrentWeight(r.Context(), req.Weight)
	}

	saved, _ := h.store.days.Get(r.Context(), req.Date)
	sendJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !validRange(from, to) {
		sendError(w, http.StatusBadRequest, "invalid_range", "from/to must be YYYY-MM-DD and from <= to")
		return
	}

	sendJSON(w, http.StatusOK, RecordsResponse{Records: h.store.Range(r.Context(), from, to)})
}

// HandleRecent handles GET /v1/weights/recent?days=N (default 30).
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	sendJSON(w, http.StatusOK, RecordsResponse{Records: h.store.Recent(r.Context(), parseDays(r, 30))})
}

// HandleSeries handles GET /v1/weights/series?days=N — the fasting-only
// series the trend chart draws.
func (h *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	sendJSON(w, http.StatusOK, RecordsResponse{Records: h.store.FastingSeries(r.Context(), parseDays(r, 30))})
}

func parseDays(r *http.Request, fallback int) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		return fallback
	}
	return days
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

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, code, message string) {
	sendJSON(w, status, profiles.ErrorResponse{
		Error: profiles.ErrorDetail{Code: code, Message: message},
	})
}
