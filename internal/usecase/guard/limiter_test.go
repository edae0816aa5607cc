package guard

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allow(t *testing.T, s *memory.Store, l *Limiter, caller domain.Address, action string, now time.Time) error {
	t.Helper()
	return s.Atomically(context.Background(), func(tx domain.Tx) error {
		return l.Allow(tx, caller, action, now)
	})
}

func TestLimiter_SlidingWindow(t *testing.T) {
	s := memory.NewStore()
	l := NewLimiter(map[string]Rule{"act": {Max: 2, Window: time.Minute}})
	caller := domain.Address{1}
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, allow(t, s, l, caller, "act", start))
	require.NoError(t, allow(t, s, l, caller, "act", start.Add(10*time.Second)))
	err := allow(t, s, l, caller, "act", start.Add(20*time.Second))
	require.ErrorIs(t, err, domain.ErrTooManyRequests)

	// The first slot frees exactly one window after it was taken.
	require.NoError(t, allow(t, s, l, caller, "act", start.Add(time.Minute)))
	err = allow(t, s, l, caller, "act", start.Add(time.Minute+time.Second))
	require.ErrorIs(t, err, domain.ErrTooManyRequests)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	s := memory.NewStore()
	l := NewLimiter(map[string]Rule{
		"a": {Max: 1, Window: time.Hour},
		"b": {Max: 1, Window: time.Hour},
	})
	now := time.Now()

	require.NoError(t, allow(t, s, l, domain.Address{1}, "a", now))
	require.NoError(t, allow(t, s, l, domain.Address{2}, "a", now))
	require.NoError(t, allow(t, s, l, domain.Address{1}, "b", now))
	require.NoError(t, allow(t, s, l, domain.Address{1}, "unlimited", now))
	require.ErrorIs(t, allow(t, s, l, domain.Address{1}, "a", now), domain.ErrTooManyRequests)
}

func TestLimiter_RejectedInstructionKeepsSlot(t *testing.T) {
	s := memory.NewStore()
	l := NewLimiter(map[string]Rule{"act": {Max: 1, Window: time.Hour}})
	now := time.Now()

	err := s.Atomically(context.Background(), func(tx domain.Tx) error {
		require.NoError(t, l.Allow(tx, domain.Address{1}, "act", now))
		return domain.ErrInvalidAmount
	})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.NoError(t, allow(t, s, l, domain.Address{1}, "act", now))
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, Rule{Max: 5, Window: 5 * time.Minute}, rules[ActionOfferCreate])
	assert.Equal(t, Rule{Max: 3, Window: 5 * time.Minute}, rules[ActionOfferAccept])
	assert.Equal(t, Rule{Max: 1, Window: time.Hour}, rules[ActionDisputeOpen])
}
