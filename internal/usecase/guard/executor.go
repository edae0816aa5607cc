package guard

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/metrics"
)

// Executor runs one instruction inside a store transaction and dispatches
// its events once the transaction commits.
type Executor struct {
	Store      domain.Store
	Clock      domain.Clock
	Dispatcher *Dispatcher
	Metrics    *metrics.ExchangeMetrics
	Logger     *slog.Logger
}

func NewExecutor(store domain.Store, clock domain.Clock, dispatcher *Dispatcher, m *metrics.ExchangeMetrics, logger *slog.Logger) *Executor {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		Store:      store,
		Clock:      clock,
		Dispatcher: dispatcher,
		Metrics:    m,
		Logger:     logger,
	}
}

// Instruction is the body of one atomic instruction.
type Instruction func(tx domain.Tx, now time.Time, out *Outbox) error

func (e *Executor) Execute(ctx context.Context, name string, fn Instruction) error {
	started := time.Now()
	now := e.Clock.Now()
	var out *Outbox

	err := e.Store.Atomically(ctx, func(tx domain.Tx) error {
		// a store may rerun the body; only the committed run's events count
		out = NewOutbox(now)
		return fn(tx, now, out)
	})
	if e.Metrics != nil {
		e.Metrics.ObserveInstruction(name, time.Since(started).Seconds())
	}
	if err != nil {
		kind := "internal"
		if k := domain.KindOf(err); k != nil {
			kind = k.Name
		}
		if e.Metrics != nil {
			e.Metrics.RecordError(name, kind)
		}
		if kind == "internal" {
			e.Logger.Error("instruction failed", "instruction", name, "error", err.Error())
		} else {
			e.Logger.Debug("instruction rejected", "instruction", name, "error", err.Error())
		}
		return err
	}
	e.Dispatcher.Dispatch(ctx, out)
	return nil
}

// View runs a read-only query against a consistent snapshot.
func (e *Executor) View(ctx context.Context, fn func(tx domain.Tx) error) error {
	return e.Store.View(ctx, fn)
}

func (e *Executor) Now() time.Time {
	return e.Clock.Now()
}
