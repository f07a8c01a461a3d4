package plans

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/FireBushtree/stronger-body/internal/datestore"
	"github.com/FireBushtree/stronger-body/internal/kv"
)

// SlotStore holds the single "today's plan" slot for one plan type.
//
// There is no TTL machinery: validity is a date comparison at read time.
// A slot from yesterday reads as absent but stays in storage until the
// next generation overwrites it or Clear removes it.
type SlotStore[P any] struct {
	backend kv.Backend
	key     string
	now     func() time.Time
}

// NewSlotStore creates a slot store over backend/key.
func NewSlotStore[P any](backend kv.Backend, key string) *SlotStore[P] {
	return &SlotStore[P]{
		backend: backend,
		key:     key,
		now:     time.Now,
	}
}

// WithClock overrides the time source (tests).
func (s *SlotStore[P]) WithClock(now func() time.Time) *SlotStore[P] {
	s.now = now
	return s
}

// Today returns the stored plan only when its date stamp is the current
// calendar day. Malformed documents read as absent.
func (s *SlotStore[P]) Today(ctx context.Context) (Slot[P], bool) {
	data, ok, err := s.backend.Read(ctx, s.key)
	if err != nil {
		log.Printf("plans: read %s: %v", s.key, err)
		return Slot[P]{}, false
	}
	if !ok {
		return Slot[P]{}, false
	}

	var slot Slot[P]
	if err := json.Unmarshal([]byte(data), &slot); err != nil {
		log.Printf("plans: malformed document at %s: %v", s.key, err)
		return Slot[P]{}, false
	}

	if slot.Date != s.now().Format(datestore.DateLayout) {
		return Slot[P]{}, false
	}
	return slot, true
}

// SetToday stamps plan with today's date and the creation instant, then
// overwrites whatever was in the slot — including a stale plan from
// another day.
func (s *SlotStore[P]) SetToday(ctx context.Context, plan P) bool {
	now := s.now()
	slot := Slot[P]{
		Date:      now.Format(datestore.DateLayout),
		CreatedAt: now.UnixMilli(),
		Plan:      plan,
	}

	data, err := json.Marshal(slot)
	if err != nil {
		log.Printf("plans: marshal %s: %v", s.key, err)
		return false
	}
	if err := s.backend.Write(ctx, s.key, string(data)); err != nil {
		log.Printf("plans: write %s: %v", s.key, err)
		return false
	}
	return true
}

// Clear removes the slot unconditionally.
func (s *SlotStore[P]) Clear(ctx context.Context) bool {
	if err := s.backend.Remove(ctx, s.key); err != nil {
		log.Printf("plans: remove %s: %v", s.key, err)
		return false
	}
	return true
}
