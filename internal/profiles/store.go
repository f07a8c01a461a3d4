package profiles

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/FireBushtree/stronger-body/internal/kv"
)

// Store persists the single user profile.
type Store struct {
	backend kv.Backend
	now     func() time.Time
}

// NewStore creates a profile store over backend.
func NewStore(backend kv.Backend) *Store {
	return &Store{
		backend: backend,
		now:     time.Now,
	}
}

// WithClock overrides the time source (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Get returns the stored profile with BMI recomputed from height and
// current weight. The stored bmi field is never trusted — it is derived
// state and the inputs may have changed since it was written. A malformed
// document reads as absent.
func (s *Store) Get(ctx context.Context) (*UserProfile, bool) {
	data, ok, err := s.backend.Read(ctx, kv.KeyUserInfo)
	if err != nil {
		log.Printf("profiles: read: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var profile UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		log.Printf("profiles: malformed profile document: %v", err)
		return nil, false
	}

	if profile.Height > 0 && profile.CurrentWeight > 0 {
		profile.BMI = ComputeBMI(profile.Height, profile.CurrentWeight)
	}
	return &profile, true
}

// Set merges update over the existing profile field by field. A zero field
// falls back to the previous value, then to the fixed default. createdAt
// survives from the first save; updatedAt is stamped now; BMI is
// recomputed before persisting. The profile is never deleted.
func (s *Store) Set(ctx context.Context, update ProfileUpdate) bool {
	var prev UserProfile
	if existing, ok := s.Get(ctx); ok {
		prev = *existing
	}
	now := s.now()

	merged := UserProfile{
		Height:              coalesceFloat(update.Height, prev.Height, DefaultHeight),
		Gender:              coalesceString(update.Gender, prev.Gender, DefaultGender),
		Age:                 coalesceInt(update.Age, prev.Age, DefaultAge),
		CurrentWeight:       coalesceFloat(update.CurrentWeight, prev.CurrentWeight, DefaultWeight),
		WeeklyWorkIntensity: coalesceString(update.WeeklyWorkIntensity, prev.WeeklyWorkIntensity, DefaultIntensity),
		// Target weight has no default; it simply carries over.
		TargetWeight: coalesceFloat(update.TargetWeight, prev.TargetWeight),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if !prev.CreatedAt.IsZero() {
		merged.CreatedAt = prev.CreatedAt
	}

	merged.BMI = ComputeBMI(merged.Height, merged.CurrentWeight)

	data, err := json.Marshal(merged)
	if err != nil {
		log.Printf("profiles: marshal: %v", err)
		return false
	}
	if err := s.backend.Write(ctx, kv.KeyUserInfo, string(data)); err != nil {
		log.Printf("profiles: write: %v", err)
		return false
	}
	return true
}

// UpdateCurrentWeight updates only the current weight. Returns false when
// no profile exists yet.
func (s *Store) UpdateCurrentWeight(ctx context.Context, weightKg float64) bool {
	if _, ok := s.Get(ctx); !ok {
		return false
	}
	return s.Set(ctx, ProfileUpdate{CurrentWeight: weightKg})
}

func coalesceFloat(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func coalesceInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func coalesceString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

