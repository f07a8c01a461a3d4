package weights

import (
	"context"
	"time"

	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/FireBushtree/stronger-body/internal/kv"
)

// Store is the weight trend: the date-keyed weigh-in series.
type Store struct {
	days *datestore.Store[WeightRecord]
}

// NewStore creates the weight trend store over backend.
func NewStore(backend kv.Backend) *Store {
	days := datestore.New(backend, kv.KeyWeightTrend, func(r WeightRecord, now time.Time) WeightRecord {
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
func (s *Store) Add(ctx context.Context, record WeightRecord) bool {
	return s.days.Upsert(ctx, record.Date, record)
}

// Range returns records with start <= date <= end, ascending.
func (s *Store) Range(ctx context.Context, start, end string) []WeightRecord {
	return s.days.Range(ctx, start, end)
}

// Recent returns the last days calendar days, today included.
func (s *Store) Recent(ctx context.Context, days int) []WeightRecord {
	return s.days.Recent(ctx, days)
}

// Today returns today's record, if any.
func (s *Store) Today(ctx context.Context) (WeightRecord, bool) {
	return s.days.Today(ctx)
}

// FastingSeries returns the last days of fasting weigh-ins only. Fasting
// and non-fasting weights are not comparable, so the chart series excludes
// the latter even though both are stored.
func (s *Store) FastingSeries(ctx context.Context, days int) []WeightRecord {
	records := s.days.Recent(ctx, days)
	series := make([]WeightRecord, 0, len(records))
	for _, r := range records {
		if r.IsFasting {
			series = append(series, r)
		}
	}
	return series
}
