// Package datestore implements the date-indexed collection shared by the
// weight and nutrition trends: a persisted mapping from calendar day
// (YYYY-MM-DD) to one record, with last-write-wins per day.
package datestore

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/FireBushtree/stronger-body/internal/kv"
)

// DateLayout is the calendar-day key format. Keys in this layout compare
// correctly as plain strings.
const DateLayout = "2006-01-02"

// Store persists map[date]T under a single backend key.
//
// Reads fail soft: a missing or malformed document yields an empty
// collection (logged, never propagated). Writes report success as a bool —
// false means "not persisted" and the caller decides whether to retry or
// surface it.
type Store[T any] struct {
	backend kv.Backend
	key     string
	stamp   func(record T, now time.Time) T
	now     func() time.Time
}

// New creates a store over backend/key. stamp is applied to every record on
// Upsert with the capture instant; pass nil to store records as given.
func New[T any](backend kv.Backend, key string, stamp func(T, time.Time) T) *Store[T] {
	return &Store[T]{
		backend: backend,
		key:     key,
		stamp:   stamp,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin "today".
func (s *Store[T]) WithClock(now func() time.Time) *Store[T] {
	s.now = now
	return s
}

// All returns the full persisted collection keyed by date.
func (s *Store[T]) All(ctx context.Context) map[string]T {
	data, ok, err := s.backend.Read(ctx, s.key)
	if err != nil {
		log.Printf("datestore: read %s: %v", s.key, err)
		return map[string]T{}
	}
	if !ok {
		return map[string]T{}
	}

	var records map[string]T
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		log.Printf("datestore: malformed document at %s: %v", s.key, err)
		return map[string]T{}
	}
	if records == nil {
		records = map[string]T{}
	}
	return records
}

// SetAll replaces the whole collection in a single backend write.
func (s *Store[T]) SetAll(ctx context.Context, records map[string]T) bool {
	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("datestore: marshal %s: %v", s.key, err)
		return false
	}
	if err := s.backend.Write(ctx, s.key, string(data)); err != nil {
		log.Printf("datestore: write %s: %v", s.key, err)
		return false
	}
	return true
}

// Upsert stamps record with the capture instant and stores it under date,
// replacing any record already there. Re-saving a day overwrites it — a
// single record per calendar day is the contract, not a limitation.
func (s *Store[T]) Upsert(ctx context.Context, date string, record T) bool {
	if s.stamp != nil {
		record = s.stamp(record, s.now())
	}

	records := s.All(ctx)
	records[date] = record
	return s.SetAll(ctx, records)
}

// Get returns the record stored under date.
func (s *Store[T]) Get(ctx context.Context, date string) (T, bool) {
	record, ok := s.All(ctx)[date]
	return record, ok
}

// Range returns records with start <= date <= end, ascending by date.
// Days outside the range are silently excluded; an empty range is empty,
// not an error.
func (s *Store[T]) Range(ctx context.Context, start, end string) []T {
	records := s.All(ctx)

	dates := make([]string, 0, len(records))
	for date := range records {
		if date >= start && date <= end {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	result := make([]T, 0, len(dates))
	for _, date := range dates {
		result = append(result, records[date])
	}
	return result
}

// Recent returns the records of the last days calendar days, today included.
func (s *Store[T]) Recent(ctx context.Context, days int) []T {
	end := s.now()
	start := end.AddDate(0, 0, -days+1)
	return s.Range(ctx, start.Format(DateLayout), end.Format(DateLayout))
}

// Today returns today's record, if present.
func (s *Store[T]) Today(ctx context.Context) (T, bool) {
	return s.Get(ctx, s.now().Format(DateLayout))
}

// TodayKey returns the current calendar day in store layout.
func (s *Store[T]) TodayKey() string {
	return s.now().Format(DateLayout)
}
