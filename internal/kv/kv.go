package kv

import "context"

// Storage keys, one per store. These mirror the browser-era localStorage
// keys so an exported dump from the old client maps 1:1 onto a backend.
const (
	KeyUserInfo       = "stronger-body-user-info"
	KeyWeightTrend    = "stronger-body-weight-trend"
	KeyNutritionTrend = "stronger-body-nutrition-trend"
	KeyDietPlan       = "stronger-body-diet-plan"
	KeyWorkoutPlan    = "stronger-body-workout-plan"
)

// Backend — key-value persistence collaborator. Values are JSON documents;
// the backend itself never inspects them.
type Backend interface {
	// Read returns the stored value for key. ok=false means not present.
	Read(ctx context.Context, key string) (value string, ok bool, err error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases backend resources (no-op for memory/file).
	Close() error
}
