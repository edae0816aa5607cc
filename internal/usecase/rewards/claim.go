package rewards

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	rewardsdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/rewards"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// ClaimRewards mints the whole unclaimed balance to the user's reward-asset
// ledger balance.
func (uc *DefaultRewardsUsecase) ClaimRewards(ctx context.Context, user domain.Address) (*rewardsdto.ClaimRewardsOutput, error) {
	var output rewardsdto.ClaimRewardsOutput
	err := uc.exec.Execute(ctx, "claim_rewards", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		token, err := loadToken(tx)
		if err != nil {
			return err
		}
		rewards, err := tx.GetUserRewards(user)
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrNoRewardsToClaim
		}
		if err != nil {
			return err
		}
		amount := rewards.UnclaimedBalance
		if amount == 0 {
			return domain.ErrNoRewardsToClaim
		}
		if err := tx.Mint(domain.AssetReward, user, amount); err != nil {
			return err
		}
		if rewards.TotalClaimed, err = domain.CheckedAdd(rewards.TotalClaimed, amount); err != nil {
			return err
		}
		rewards.UnclaimedBalance = 0
		if err := token.Settle(amount); err != nil {
			return err
		}
		if err := tx.SaveUserRewards(rewards); err != nil {
			return err
		}
		if err := tx.SaveRewardToken(token); err != nil {
			return err
		}
		balance, err := tx.Balance(domain.AssetReward, user)
		if err != nil {
			return err
		}
		out.Add(domain.EventRewardsClaimed, user, domain.RewardsEvent{User: user, Amount: amount, Reason: "claim"})
		output = rewardsdto.ClaimRewardsOutput{Rewards: rewards, Claimed: amount, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordRewardsClaimed(output.Claimed)
	}
	uc.exec.Logger.Info("rewards claimed", "user", user.String(), "amount", output.Claimed)
	return &output, nil
}
