package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/FireBushtree/stronger-body/internal/kv"
)

func TestComputeBMI(t *testing.T) {
	if bmi := ComputeBMI(180, 80); bmi != 24.7 {
		t.Errorf("expected 24.7, got %v", bmi)
	}
	if bmi := ComputeBMI(0, 80); bmi != 0 {
		t.Errorf("expected 0 for zero height, got %v", bmi)
	}
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	if _, ok := store.Get(ctx); ok {
		t.Fatal("expected no profile before first set")
	}

	ok := store.Set(ctx, ProfileUpdate{
		Height:              180,
		Gender:              GenderFemale,
		Age:                 30,
		CurrentWeight:       80,
		WeeklyWorkIntensity: IntensityHeavy,
	})
	if !ok {
		t.Fatal("set failed")
	}

	profile, ok := store.Get(ctx)
	if !ok {
		t.Fatal("expected profile after set")
	}
	if profile.Height != 180 || profile.Gender != GenderFemale || profile.Age != 30 {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if profile.BMI != 24.7 {
		t.Errorf("expected BMI 24.7, got %v", profile.BMI)
	}
	if !profile.Complete() {
		t.Error("expected profile to be complete")
	}
}

func TestSetMergesPartialUpdate(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	current := first
	store := NewStore(kv.NewMemory()).WithClock(func() time.Time { return current })

	store.Set(ctx, ProfileUpdate{Height: 180, Gender: GenderFemale, Age: 30, CurrentWeight: 80, WeeklyWorkIntensity: IntensityHeavy})

	current = later
	store.Set(ctx, ProfileUpdate{Age: 40})

	profile, _ := store.Get(ctx)
	if profile.Age != 40 {
		t.Errorf("expected age 40, got %d", profile.Age)
	}
	if profile.Height != 180 || profile.Gender != GenderFemale || profile.CurrentWeight != 80 {
		t.Errorf("partial update must keep the other fields: %+v", profile)
	}
	if !profile.CreatedAt.Equal(first) {
		t.Errorf("createdAt must survive updates: %v", profile.CreatedAt)
	}
	if !profile.UpdatedAt.Equal(later) {
		t.Errorf("updatedAt must be refreshed: %v", profile.UpdatedAt)
	}
}

func TestCompleteRejectsDefaultTuple(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	// An empty update lands exactly on the defaults.
	store.Set(ctx, ProfileUpdate{})

	profile, ok := store.Get(ctx)
	if !ok {
		t.Fatal("expected a stored profile")
	}
	if profile.Complete() {
		t.Error("the default tuple must not count as complete")
	}

	store.Set(ctx, ProfileUpdate{Height: 171})
	profile, _ = store.Get(ctx)
	if !profile.Complete() {
		t.Error("any deviation from the defaults makes the profile complete")
	}
}

func TestUpdateCurrentWeight(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	if store.UpdateCurrentWeight(ctx, 75) {
		t.Error("expected false when no profile exists")
	}

	store.Set(ctx, ProfileUpdate{Height: 180, Gender: GenderMale, Age: 30, CurrentWeight: 80, WeeklyWorkIntensity: IntensityHeavy})
	if !store.UpdateCurrentWeight(ctx, 78.5) {
		t.Fatal("expected weight update to succeed")
	}

	profile, _ := store.Get(ctx)
	if profile.CurrentWeight != 78.5 {
		t.Errorf("expected 78.5, got %v", profile.CurrentWeight)
	}
	if profile.Height != 180 {
		t.Errorf("height must be untouched, got %v", profile.Height)
	}
}

func TestGetMalformedDocument(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	backend.Write(ctx, kv.KeyUserInfo, "not json at all")

	store := NewStore(backend)
	if _, ok := store.Get(ctx); ok {
		t.Error("malformed profile document must read as absent")
	}
}
