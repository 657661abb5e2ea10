package subscription

import (
	"context"
	"sync"
	"time"
)

// Lister is the read side of Store that a Session needs.
type Lister interface {
	ListAll(ctx context.Context) ([]Subscription, error)
}

// Session mirrors the stored collection in memory. It is replaced
// wholesale by Refresh after every successful write; a failed refresh
// keeps the previous, possibly stale, list.
type Session struct {
	store Lister

	mu          sync.RWMutex
	subs        []Subscription
	refreshedAt time.Time
}

func NewSession(store Lister) *Session {
	return &Session{store: store}
}

func (s *Session) Refresh(ctx context.Context) error {
	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.subs = subs
	s.refreshedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Subscriptions returns a deep copy of the cached list.
func (s *Session) Subscriptions() []Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Subscription, len(s.subs))
	for i, sub := range s.subs {
		out[i] = sub.Clone()
	}
	return out
}

func (s *Session) Find(id int64) (Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subs {
		if sub.ID == id {
			return sub.Clone(), true
		}
	}
	return Subscription{}, false
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Loaded reports whether at least one Refresh has succeeded.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.refreshedAt.IsZero()
}
