package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dispute"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/pagination"
)

// SweeperAddress signs forced resolutions issued by the service itself.
var SweeperAddress = domain.DeriveAddress([]byte("sweeper"))

type BackgroundTasks struct {
	DisputeUsecase dispute.DisputeUsecase
	Clock          domain.Clock
	Interval       time.Duration
	Logger         *slog.Logger
}

func NewBackgroundTasks(disputeUC dispute.DisputeUsecase, clock domain.Clock, interval time.Duration, logger *slog.Logger) *BackgroundTasks {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundTasks{
		DisputeUsecase: disputeUC,
		Clock:          clock,
		Interval:       interval,
		Logger:         logger,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	if bt.Interval <= 0 {
		return
	}
	go bt.startForceResolveDisputes(ctx)
}

func (bt *BackgroundTasks) startForceResolveDisputes(ctx context.Context) {
	ticker := time.NewTicker(bt.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := bt.ForceResolveExpired(ctx); err != nil {
				bt.Logger.Error("force resolve disputes", "error", err.Error())
			} else if n > 0 {
				bt.Logger.Info("disputes force-resolved", "count", n)
			}
		}
	}
}

// ForceResolveExpired executes every unresolved dispute whose total
// deadline has passed. It returns how many were resolved.
func (bt *BackgroundTasks) ForceResolveExpired(ctx context.Context) (int, error) {
	now := bt.Clock.Now()
	openedBefore := now.Add(-domain.TotalDisputeDeadline)
	var expired []domain.Address
	for page := int32(1); ; page++ {
		out, err := bt.DisputeUsecase.ListDisputes(ctx, &disputedto.ListDisputesInput{
			Unresolved:   true,
			OpenedBefore: &openedBefore,
			Page:         page,
			Limit:        pagination.MaxLimit,
		})
		if err != nil {
			return 0, err
		}
		for _, d := range out.Disputes {
			expired = append(expired, d.ID)
		}
		if page >= out.Pagination.TotalPages {
			break
		}
	}

	resolved := 0
	for _, id := range expired {
		if _, err := bt.DisputeUsecase.ExecuteVerdict(ctx, SweeperAddress, id); err != nil {
			// another caller may have executed it first
			bt.Logger.Warn("force resolve failed", "dispute", id.String(), "error", err.Error())
			continue
		}
		resolved++
	}
	return resolved, nil
}
