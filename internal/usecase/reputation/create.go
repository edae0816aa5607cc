package reputation

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// CreateReputation initializes the caller's reputation. Calling it again
// returns the existing record unchanged.
func (uc *DefaultReputationUsecase) CreateReputation(ctx context.Context, user domain.Address) (*domain.Reputation, error) {
	var rep *domain.Reputation
	err := uc.exec.Execute(ctx, "create_reputation", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		existing, created, err := LoadOrInit(tx, user, now)
		if err != nil {
			return err
		}
		rep = existing
		if !created {
			return nil
		}
		return tx.SaveReputation(rep)
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}
