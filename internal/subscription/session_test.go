package subscription

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	subs []Subscription
	err  error
}

func (s *stubLister) ListAll(ctx context.Context) ([]Subscription, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Subscription, len(s.subs))
	for i := range s.subs {
		out[i] = s.subs[i].Clone()
	}
	return out, nil
}

func TestSession_Refresh(t *testing.T) {
	store := &stubLister{subs: []Subscription{
		{ID: 1, Name: "Netflix", Members: Members{{ID: "a", Name: "Ana"}}},
		{ID: 2, Name: "Spotify"},
	}}
	s := NewSession(store)

	assert.False(t, s.Loaded())
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.Loaded())
	assert.Equal(t, 2, s.Len())

	sub, ok := s.Find(2)
	require.True(t, ok)
	assert.Equal(t, "Spotify", sub.Name)

	_, ok = s.Find(3)
	assert.False(t, ok)
}

func TestSession_RefreshFailureKeepsStaleList(t *testing.T) {
	store := &stubLister{subs: []Subscription{{ID: 1, Name: "Netflix"}}}
	s := NewSession(store)
	require.NoError(t, s.Refresh(context.Background()))

	store.subs = append(store.subs, Subscription{ID: 2, Name: "Spotify"})
	store.err = errors.New("store unavailable")

	assert.Error(t, s.Refresh(context.Background()))
	assert.Equal(t, 1, s.Len())
}

func TestSession_SubscriptionsReturnsCopies(t *testing.T) {
	store := &stubLister{subs: []Subscription{
		{ID: 1, Name: "Netflix", Members: Members{{ID: "a", Name: "Ana"}}},
	}}
	s := NewSession(store)
	require.NoError(t, s.Refresh(context.Background()))

	subs := s.Subscriptions()
	subs[0].Name = "changed"
	subs[0].Members[0].Name = "changed"

	again := s.Subscriptions()
	assert.Equal(t, "Netflix", again[0].Name)
	assert.Equal(t, "Ana", again[0].Members[0].Name)
}
