package rewards

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

func (uc *DefaultRewardsUsecase) GetRewardToken(ctx context.Context) (*domain.RewardToken, error) {
	var token *domain.RewardToken
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := loadToken(tx)
		token = found
		return err
	})
	return token, err
}

func (uc *DefaultRewardsUsecase) GetUserRewards(ctx context.Context, user domain.Address) (*domain.UserRewards, error) {
	var rewards *domain.UserRewards
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := tx.GetUserRewards(user)
		rewards = found
		return err
	})
	return rewards, err
}
