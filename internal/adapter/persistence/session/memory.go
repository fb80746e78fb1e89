// Package session stores the inputs of open simulation sessions.
package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/usecase/interfaces"
)

type memoryEntry struct {
	state     budget.State
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used when REDIS_URL is not
// set and in tests; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates a store whose entries expire ttl after the last save.
// A non-positive ttl keeps entries until deleted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, st budget.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{state: cloneState(st)}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.sessions[sessionID] = e
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (budget.State, bool, error) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return budget.State{}, false, nil
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return budget.State{}, false, nil
	}
	return cloneState(e.state), true, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func cloneState(st budget.State) budget.State {
	out := budget.State{
		Environments:    slices.Clone(st.Environments),
		PaymentMethods:  slices.Clone(st.PaymentMethods),
		DiscountPercent: st.DiscountPercent,
	}
	if st.Client != nil {
		c := *st.Client
		out.Client = &c
	}
	return out
}
