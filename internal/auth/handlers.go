package auth

import (
	"encoding/json"
	"net/http"

	"github.com/FireBushtree/stronger-body/internal/config"
)

// Handlers handles the auth endpoints.
type Handlers struct {
	config  *config.Config
	service *Service
}

func NewHandlers(cfg *config.Config, service *Service) *Handlers {
	return &Handlers{config: cfg, service: service}
}

// HandleDevToken handles POST /v1/auth/dev-token. Available only in dev
// auth mode.
func (h *Handlers) HandleDevToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	if h.config.AuthMode != "dev" {
		writeError(w, http.StatusNotFound, "not_found", "Dev auth is disabled")
		return
	}

	resp, err := h.service.SignInDev()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to issue token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
