package draftstore

import (
	"context"
	"sync"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/infra"
	"wayfarer/internal/pkg/clock"

	"github.com/google/uuid"
)

// MemoryStore is a map-backed Store with the same semantics as the Redis
// implementation, used by tests and local development. Drafts round-trip
// through the record codec so serialization bugs surface here too.
type MemoryStore struct {
	mu      sync.RWMutex
	drafts  map[uuid.UUID]draftRecord
	byOffer map[string]uuid.UUID
	locks   map[uuid.UUID]time.Time
	clock   clock.Clock
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		drafts:  make(map[uuid.UUID]draftRecord),
		byOffer: make(map[string]uuid.UUID),
		locks:   make(map[uuid.UUID]time.Time),
		clock:   clk,
	}
}

func (s *MemoryStore) Save(_ context.Context, draft *booking.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := toRecord(draft)
	s.drafts[draft.ID()] = rec
	s.byOffer[draft.OfferID()] = draft.ID()
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Draft, error) {
	s.mu.RLock()
	rec, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok {
		return nil, infra.WrapRepoErr("draft not found", nil, infra.KindNotFound)
	}
	return fromRecord(rec)
}

func (s *MemoryStore) FindIDByOfferID(_ context.Context, offerID string) (uuid.UUID, error) {
	s.mu.RLock()
	id, ok := s.byOffer[offerID]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, infra.WrapRepoErr("no draft for offer", nil, infra.KindNotFound)
	}
	return id, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.drafts[id]; ok {
		delete(s.byOffer, rec.OfferID)
		delete(s.drafts, id)
	}
	return nil
}

func (s *MemoryStore) AcquireFinalizeLock(_ context.Context, id uuid.UUID, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if deadline, held := s.locks[id]; held && now.Before(deadline) {
		return false, nil
	}
	s.locks[id] = now.Add(ttl)
	return true, nil
}

func (s *MemoryStore) ReleaseFinalizeLock(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, id)
	return nil
}
