package reputation

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

func (uc *DefaultReputationUsecase) GetReputation(ctx context.Context, user domain.Address) (*domain.Reputation, error) {
	var rep *domain.Reputation
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := tx.GetReputation(user)
		if err != nil {
			return err
		}
		rep = found
		return nil
	})
	return rep, err
}
