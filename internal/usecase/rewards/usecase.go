package rewards

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	rewardsdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/rewards"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

type RewardsUsecase interface {
	CreateRewardToken(ctx context.Context, input *rewardsdto.CreateRewardTokenInput) (*domain.RewardToken, error)
	UpdateRewardToken(ctx context.Context, input *rewardsdto.UpdateRewardTokenInput) (*domain.RewardToken, error)
	AccrueReward(ctx context.Context, admin, user domain.Address, amount uint64) (*domain.UserRewards, error)
	ClaimRewards(ctx context.Context, user domain.Address) (*rewardsdto.ClaimRewardsOutput, error)
	GetRewardToken(ctx context.Context) (*domain.RewardToken, error)
	GetUserRewards(ctx context.Context, user domain.Address) (*domain.UserRewards, error)
}

type DefaultRewardsUsecase struct {
	exec *guard.Executor
}

func NewDefaultRewardsUsecase(exec *guard.Executor) *DefaultRewardsUsecase {
	return &DefaultRewardsUsecase{exec: exec}
}
