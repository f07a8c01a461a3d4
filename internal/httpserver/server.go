package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/FireBushtree/stronger-body/internal/ai"
	"github.com/FireBushtree/stronger-body/internal/auth"
	"github.com/FireBushtree/stronger-body/internal/blob"
	"github.com/FireBushtree/stronger-body/internal/config"
	"github.com/FireBushtree/stronger-body/internal/kv"
	"github.com/FireBushtree/stronger-body/internal/nutrition"
	"github.com/FireBushtree/stronger-body/internal/plans"
	"github.com/FireBushtree/stronger-body/internal/profiles"
	"github.com/FireBushtree/stronger-body/internal/reports"
	"github.com/FireBushtree/stronger-body/internal/weights"
)

// Server wires the stores, flows and handlers into one HTTP API.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	backend        kv.Backend
	authMiddleware *auth.Middleware
}

// New creates the server over an explicit key-value backend. Used by tests
// to inject a memory backend and a mock agent.
func New(cfg *config.Config, backend kv.Backend, provider ai.Provider) *Server {
	s := &Server{
		config:  cfg,
		mux:     http.NewServeMux(),
		backend: backend,
	}
	s.routes(provider)
	return s
}

// NewFromConfig resolves the backend and agent provider from cfg.
func NewFromConfig(cfg *config.Config) *Server {
	backend, err := kv.NewFromMode(context.Background(), cfg.KVMode, cfg.DatabaseURL, cfg.KVDataDir)
	if err != nil {
		log.Printf("kv: init failed (%v), falling back to in-memory store", err)
		backend = kv.NewMemory()
	}
	return New(cfg, backend, ai.NewProvider(cfg))
}

func (s *Server) routes(provider ai.Provider) {
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (public)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(s.config, authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)
	s.mux.HandleFunc("/v1/auth/dev-token", authHandler.HandleDevToken)

	// Profile API
	profileStore := profiles.NewStore(s.backend)
	profileHandler := profiles.NewHandler(profileStore)
	s.mux.HandleFunc("/v1/profile", profileHandler.HandleProfile)
	s.mux.HandleFunc("/v1/profile/targets", profileHandler.HandleTargets)

	// Weight trend API
	weightStore := weights.NewStore(s.backend)
	weightHandler := weights.NewHandler(weightStore, profileStore)
	s.mux.HandleFunc("/v1/weights", weightHandler.HandleWeights)
	s.mux.HandleFunc("/v1/weights/recent", weightHandler.HandleRecent)
	s.mux.HandleFunc("/v1/weights/series", weightHandler.HandleSeries)

	// Nutrition trend API
	nutritionStore := nutrition.NewStore(s.backend)
	nutritionService := nutrition.NewService(nutritionStore, profileStore, provider)
	nutritionHandler := nutrition.NewHandler(nutritionStore, nutritionService)
	s.mux.HandleFunc("/v1/nutrition", nutritionHandler.HandleNutrition)
	s.mux.HandleFunc("/v1/nutrition/log", nutritionHandler.HandleLog)
	s.mux.HandleFunc("/v1/nutrition/today", nutritionHandler.HandleToday)
	s.mux.HandleFunc("/v1/nutrition/recent", nutritionHandler.HandleRecent)

	// Plans API
	planService := plans.NewService(s.backend, profileStore, provider)
	planHandler := plans.NewHandler(planService)
	s.mux.HandleFunc("/v1/plans/diet/generate", planHandler.HandleGenerateDiet)
	s.mux.HandleFunc("/v1/plans/diet/today", planHandler.HandleDietToday)
	s.mux.HandleFunc("/v1/plans/workout/generate", planHandler.HandleGenerateWorkout)
	s.mux.HandleFunc("/v1/plans/workout/today", planHandler.HandleWorkoutToday)

	// Reports API
	blobStore, blobMode, err := blob.NewBlobStore(s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize store: %v", err)
	}
	log.Printf("INFO blob: reports blob mode: %s", blobMode)

	reportGenerator := reports.NewGenerator(weightStore, nutritionStore, profileStore)
	reportService := reports.NewService(
		reportGenerator,
		blobStore,
		s.config.ReportsMaxRangeDays,
		s.config.Blob.S3.PresignTTLSeconds,
		s.config.Blob.S3.PublicBaseURL,
		s.config.Blob.S3.PreferPublicURL,
	)
	reportHandler := reports.NewHandlers(reportService)
	s.mux.HandleFunc("/v1/reports", reportHandler.HandleReports)
	s.mux.HandleFunc("/v1/reports/{id}", reportHandler.HandleReport)
	s.mux.HandleFunc("GET /v1/reports/{id}/download", reportHandler.HandleDownload)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Handler returns the full middleware chain, outermost first:
// CORS -> rate limit -> auth -> router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != "none" {
		handler = s.authMiddleware.RequireAuth(handler)
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

// Start runs the server until ListenAndServe fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("Server listening on http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// Close releases the key-value backend.
func (s *Server) Close() error {
	if s.backend != nil {
		return s.backend.Close()
	}
	return nil
}
