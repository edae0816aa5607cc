package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, domain.Event) error {
	p.calls++
	return errors.New("broker down")
}

func newExecutor(t *testing.T, pub domain.EventPublisher) (*Executor, *metrics.ExchangeMetrics) {
	t.Helper()
	dispatcher, err := NewDispatcher(pub, nil)
	require.NoError(t, err)
	m := metrics.NewExchangeMetrics(prometheus.NewRegistry())
	clock := memory.NewClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	return NewExecutor(memory.NewStore(), clock, dispatcher, m, nil), m
}

func TestExecute_DispatchesAfterCommit(t *testing.T) {
	rec := memory.NewEventRecorder()
	exec, _ := newExecutor(t, rec)

	err := exec.Execute(context.Background(), "test", func(tx domain.Tx, now time.Time, out *Outbox) error {
		out.Add(domain.EventOfferCreated, domain.Address{1}, nil)
		out.Add(domain.EventOfferListed, domain.Address{1}, nil)
		return nil
	})
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventOfferCreated, events[0].Type)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.Equal(t, exec.Now(), events[0].OccurredAt)
}

func TestExecute_FailedInstructionEmitsNothing(t *testing.T) {
	rec := memory.NewEventRecorder()
	exec, m := newExecutor(t, rec)

	err := exec.Execute(context.Background(), "test", func(tx domain.Tx, now time.Time, out *Outbox) error {
		out.Add(domain.EventOfferCreated, domain.Address{1}, nil)
		return domain.ErrUnauthorized
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, rec.Events())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InstructionErrorsTotal.WithLabelValues("test", "Unauthorized")))
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	pub := &failingPublisher{}
	exec, _ := newExecutor(t, pub)

	err := exec.Execute(context.Background(), "test", func(tx domain.Tx, now time.Time, out *Outbox) error {
		out.Add(domain.EventOfferCreated, domain.Address{1}, nil)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pub.calls)
}

func TestRequireAdmin(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	authority := domain.Address{1}

	err := s.View(ctx, func(tx domain.Tx) error {
		_, err := RequireAdmin(tx, authority)
		return err
	})
	require.ErrorIs(t, err, domain.ErrAdminRequired)

	require.NoError(t, s.Atomically(ctx, func(tx domain.Tx) error {
		return tx.CreateAdmin(&domain.Admin{ID: domain.AdminAddress(), Authority: authority, Signers: []domain.Address{authority}, Threshold: 1})
	}))
	require.NoError(t, s.View(ctx, func(tx domain.Tx) error {
		_, err := RequireAdmin(tx, authority)
		assert.NoError(t, err)
		_, err = RequireAdmin(tx, domain.Address{2})
		assert.ErrorIs(t, err, domain.ErrAdminRequired)
		ok, err := IsAdmin(tx, authority)
		assert.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))
}

// rerunningStore runs every instruction body twice and keeps only the
// second run, as a store does after losing a row-creation race.
type rerunningStore struct{ *memory.Store }

func (s rerunningStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	_ = s.Store.Atomically(ctx, func(tx domain.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		return errors.New("conflict")
	})
	return s.Store.Atomically(ctx, fn)
}

func TestExecute_RerunKeepsOnlyCommittedEvents(t *testing.T) {
	rec := memory.NewEventRecorder()
	dispatcher, err := NewDispatcher(rec, nil)
	require.NoError(t, err)
	exec := NewExecutor(rerunningStore{memory.NewStore()}, nil, dispatcher, nil, nil)

	runs := 0
	err = exec.Execute(context.Background(), "test", func(tx domain.Tx, now time.Time, out *Outbox) error {
		runs++
		out.Add(domain.EventOfferCreated, domain.Address{1}, nil)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
	assert.Len(t, rec.Events(), 1)
}
