package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/FireBushtree/stronger-body/internal/ai"
	"github.com/FireBushtree/stronger-body/internal/ingest"
	"github.com/FireBushtree/stronger-body/internal/kv"
	"github.com/FireBushtree/stronger-body/internal/profiles"
	"github.com/FireBushtree/stronger-body/internal/prompts"
)

var (
	ErrProfileRequired = errors.New("profile must be filled in first")
	ErrNotPersisted    = errors.New("plan was not persisted")
)

// Service runs the plan-generation flows: profile → template → agent →
// ingestion → today's slot. The diet and workout flows share nothing but
// the provider; they are triggered independently and may be in flight at
// the same time.
type Service struct {
	diet     *SlotStore[DietPlan]
	workout  *SlotStore[WorkoutPlan]
	profiles *profiles.Store
	provider ai.Provider
}

// NewService creates the plan service.
func NewService(backend kv.Backend, profileStore *profiles.Store, provider ai.Provider) *Service {
	return &Service{
		diet:     NewSlotStore[DietPlan](backend, kv.KeyDietPlan),
		workout:  NewSlotStore[WorkoutPlan](backend, kv.KeyWorkoutPlan),
		profiles: profileStore,
		provider: provider,
	}
}

// DietStore exposes the diet slot store.
func (s *Service) DietStore() *SlotStore[DietPlan] { return s.diet }

// WorkoutStore exposes the workout slot store.
func (s *Service) WorkoutStore() *SlotStore[WorkoutPlan] { return s.workout }

// GenerateDiet runs the diet flow and returns the stored slot.
//
// The agent call and the persist run on a context detached from the
// caller's: an abandoned request (closed modal, dropped connection) lets
// the generation finish and the result land in the slot anyway.
func (s *Service) GenerateDiet(ctx context.Context) (Slot[DietPlan], error) {
	profile, ok := s.profiles.Get(ctx)
	if !ok || !profile.Complete() {
		return Slot[DietPlan]{}, ErrProfileRequired
	}

	flow := context.WithoutCancel(ctx)

	reply, err := ai.Reply(flow, s.provider, prompts.DietPlan(profile))
	if err != nil {
		return Slot[DietPlan]{}, fmt.Errorf("agent call: %w", err)
	}

	var plan DietPlan
	if err := ingest.Unmarshal(reply, &plan); err != nil {
		return Slot[DietPlan]{}, err
	}

	if !s.diet.SetToday(flow, plan) {
		return Slot[DietPlan]{}, ErrNotPersisted
	}

	slot, _ := s.diet.Today(flow)
	return slot, nil
}

// GenerateWorkout runs the workout flow and returns the stored slot.
func (s *Service) GenerateWorkout(ctx context.Context) (Slot[WorkoutPlan], error) {
	profile, ok := s.profiles.Get(ctx)
	if !ok || !profile.Complete() {
		return Slot[WorkoutPlan]{}, ErrProfileRequired
	}

	flow := context.WithoutCancel(ctx)

	reply, err := ai.Reply(flow, s.provider, prompts.WorkoutPlan(profile))
	if err != nil {
		return Slot[WorkoutPlan]{}, fmt.Errorf("agent call: %w", err)
	}

	var plan WorkoutPlan
	if err := ingest.Unmarshal(reply, &plan); err != nil {
		return Slot[WorkoutPlan]{}, err
	}

	if !s.workout.SetToday(flow, plan) {
		return Slot[WorkoutPlan]{}, ErrNotPersisted
	}

	slot, _ := s.workout.Today(flow)
	return slot, nil
}
