package plans

import (
	"context"
	"errors"
	"testing"

	"github.com/FireBushtree/stronger-body/internal/ai"
	"github.com/FireBushtree/stronger-body/internal/kv"
	"github.com/FireBushtree/stronger-body/internal/profiles"
)

func newTestService(backend kv.Backend, provider ai.Provider) (*Service, *profiles.Store) {
	profileStore := profiles.NewStore(backend)
	return NewService(backend, profileStore, provider), profileStore
}

func seedProfile(t *testing.T, profileStore *profiles.Store) {
	t.Helper()
	ok := profileStore.Set(context.Background(), profiles.ProfileUpdate{
		Height:              178,
		Gender:              profiles.GenderMale,
		Age:                 28,
		CurrentWeight:       75,
		WeeklyWorkIntensity: profiles.IntensityModerate,
	})
	if !ok {
		t.Fatal("failed to seed profile")
	}
}

func TestGenerateDiet(t *testing.T) {
	ctx := context.Background()
	service, profileStore := newTestService(kv.NewMemory(), ai.NewMockProvider())
	seedProfile(t, profileStore)

	slot, err := service.GenerateDiet(ctx)
	if err != nil {
		t.Fatalf("GenerateDiet failed: %v", err)
	}

	if len(slot.Plan.Breakfast.Foods) == 0 || len(slot.Plan.Lunch.Foods) == 0 || len(slot.Plan.Dinner.Foods) == 0 {
		t.Errorf("expected three populated meals: %+v", slot.Plan)
	}
	if slot.Plan.Summary.TotalDailyCalories == "" {
		t.Error("expected a daily calorie total")
	}

	// The slot is retrievable as today's plan.
	stored, ok := service.DietStore().Today(ctx)
	if !ok {
		t.Fatal("expected today's diet plan after generation")
	}
	if stored.CreatedAt != slot.CreatedAt {
		t.Error("stored slot must match the returned one")
	}
}

func TestGenerateWorkout(t *testing.T) {
	ctx := context.Background()
	service, profileStore := newTestService(kv.NewMemory(), ai.NewMockProvider())
	seedProfile(t, profileStore)

	slot, err := service.GenerateWorkout(ctx)
	if err != nil {
		t.Fatalf("GenerateWorkout failed: %v", err)
	}

	if len(slot.Plan.MainWorkout.Exercises) == 0 {
		t.Errorf("expected main workout exercises: %+v", slot.Plan)
	}
	if slot.Plan.Summary.TotalDuration == "" {
		t.Error("expected a session duration")
	}

	if _, ok := service.WorkoutStore().Today(ctx); !ok {
		t.Error("expected today's workout plan after generation")
	}
}

func TestGenerateRequiresCompleteProfile(t *testing.T) {
	ctx := context.Background()

	// No profile at all.
	service, _ := newTestService(kv.NewMemory(), ai.NewMockProvider())
	if _, err := service.GenerateDiet(ctx); !errors.Is(err, ErrProfileRequired) {
		t.Errorf("expected ErrProfileRequired, got %v", err)
	}

	// A profile that still equals the defaults.
	service, profileStore := newTestService(kv.NewMemory(), ai.NewMockProvider())
	profileStore.Set(ctx, profiles.ProfileUpdate{})
	if _, err := service.GenerateWorkout(ctx); !errors.Is(err, ErrProfileRequired) {
		t.Errorf("expected ErrProfileRequired for default profile, got %v", err)
	}
}

type cannedProvider struct {
	reply string
	err   error
}

func (p cannedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

func TestGenerateDietBadReply(t *testing.T) {
	ctx := context.Background()
	service, profileStore := newTestService(kv.NewMemory(), cannedProvider{reply: "抱歉，我帮不了你。"})
	seedProfile(t, profileStore)

	if _, err := service.GenerateDiet(ctx); err == nil {
		t.Fatal("expected an ingestion error")
	}
	if _, ok := service.DietStore().Today(ctx); ok {
		t.Error("a rejected reply must not land in the slot")
	}
}
