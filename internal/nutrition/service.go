package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FireBushtree/stronger-body/internal/ai"
	"github.com/FireBushtree/stronger-body/internal/ingest"
	"github.com/FireBushtree/stronger-body/internal/profiles"
	"github.com/FireBushtree/stronger-body/internal/prompts"
)

var (
	ErrEmptyInput      = errors.New("food description is empty")
	ErrProfileRequired = errors.New("profile must be filled in first")
	ErrNotPersisted    = errors.New("nutrition record was not persisted")
)

// Service runs the intake-logging flow: free-text food description →
// nutrition-calculation prompt → agent → ingestion → one stored record.
type Service struct {
	store    *Store
	profiles *profiles.Store
	provider ai.Provider
}

// NewService creates the nutrition service.
func NewService(store *Store, profileStore *profiles.Store, provider ai.Provider) *Service {
	return &Service{
		store:    store,
		profiles: profileStore,
		provider: provider,
	}
}

// agentPayload is the JSON object the nutrition-calculation template asks
// for. The totals arrive as numbers or unit-suffixed strings; Loose types
// normalize both.
type agentPayload struct {
	Foods          []FoodItem `json:"foods"`
	TotalNutrition struct {
		Calories ingest.LooseInt   `json:"calories"`
		Protein  ingest.LooseFloat `json:"protein"`
		Carbs    ingest.LooseFloat `json:"carbs"`
		Fat      ingest.LooseFloat `json:"fat"`
	} `json:"totalNutrition"`
	Analysis string `json:"analysis"`
}

// LogIntake runs the full flow and returns the stored record.
//
// The record is assembled completely before the single store write, so a
// failure at any step leaves the trend untouched. The agent call runs on a
// context detached from the caller's: a closed modal must not discard a
// computation the agent already finished.
func (s *Service) LogIntake(ctx context.Context, foodInput string) (NutritionRecord, error) {
	foodInput = strings.TrimSpace(foodInput)
	if foodInput == "" {
		return NutritionRecord{}, ErrEmptyInput
	}

	profile, ok := s.profiles.Get(ctx)
	if !ok {
		return NutritionRecord{}, ErrProfileRequired
	}
	_ = profile // the template needs no profile fields today, but the flow requires one, matching the client

	prompt := prompts.NutritionCalculation(foodInput)

	reply, err := ai.Reply(context.WithoutCancel(ctx), s.provider, prompt)
	if err != nil {
		return NutritionRecord{}, fmt.Errorf("agent call: %w", err)
	}

	var payload agentPayload
	if err := ingest.Unmarshal(reply, &payload); err != nil {
		return NutritionRecord{}, err
	}

	record := NutritionRecord{
		Date:          s.store.TodayKey(),
		Calories:      int(payload.TotalNutrition.Calories),
		Protein:       float64(payload.TotalNutrition.Protein),
		Fat:           float64(payload.TotalNutrition.Fat),
		Carbohydrates: float64(payload.TotalNutrition.Carbs),
		Foods:         payload.Foods,
		OriginalInput: foodInput,
		Analysis:      payload.Analysis,
	}

	if !s.store.Add(context.WithoutCancel(ctx), record) {
		return NutritionRecord{}, ErrNotPersisted
	}

	stored, _ := s.store.Today(context.WithoutCancel(ctx))
	return stored, nil
}
