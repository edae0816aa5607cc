package reputation

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// UpdateReputation is the manual admin correction of a user's reputation.
func (uc *DefaultReputationUsecase) UpdateReputation(ctx context.Context, admin, user domain.Address, outcome domain.Outcome) (*domain.Reputation, error) {
	var rep *domain.Reputation
	err := uc.exec.Execute(ctx, "update_reputation", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if _, err := guard.RequireAdmin(tx, admin); err != nil {
			return err
		}
		updated, err := Record(tx, out, user, outcome, now)
		if err != nil {
			return err
		}
		rep = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.exec.Logger.Info("reputation updated by admin",
		"user", user.String(),
		"outcome", outcome,
		"rating", rep.Rating,
	)
	return rep, nil
}
