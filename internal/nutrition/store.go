package nutrition

import (
	"context"
	"time"

	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/FireBushtree/stronger-body/internal/kv"
)

// Store is the nutrition trend: the date-keyed intake series.
type Store struct {
	days *datestore.Store[NutritionRecord]
}

// NewStore creates the nutrition trend store over backend.
func NewStore(backend kv.Backend) *Store {
	days := datestore.New(backend, kv.KeyNutritionTrend, func(r NutritionRecord, now time.Time) NutritionRecord {
		r.Timestamp = now.UnixMilli()
		return r
	})
	return &Store{days: days}
}

// WithClock overrides the time source (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.days.WithClock(now)
	return s
}

// Add upserts record under its date, stamping the capture instant.
func (s *Store) Add(ctx context.Context, record NutritionRecord) bool {
	return s.days.Upsert(ctx, record.Date, record)
}

// Range returns records with start <= date <= end, ascending.
func (s *Store) Range(ctx context.Context, start, end string) []NutritionRecord {
	return s.days.Range(ctx, start, end)
}

// Recent returns the last days calendar days, today included.
func (s *Store) Recent(ctx context.Context, days int) []NutritionRecord {
	return s.days.Recent(ctx, days)
}

// Today returns today's aggregate intake, if any.
func (s *Store) Today(ctx context.Context) (NutritionRecord, bool) {
	return s.days.Today(ctx)
}

// TodayKey returns the current calendar day.
func (s *Store) TodayKey() string {
	return s.days.TodayKey()
}
