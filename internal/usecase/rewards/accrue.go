package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

const (
	ReasonTrade  = "trade"
	ReasonVote   = "vote"
	ReasonManual = "manual"
)

func loadUserRewards(repo domain.RewardRepository, user domain.Address) (*domain.UserRewards, error) {
	rewards, err := repo.GetUserRewards(user)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.NewUserRewards(user), nil
	}
	return rewards, err
}

func credit(tx domain.RewardRepository, token *domain.RewardToken, rewards *domain.UserRewards, amount uint64) error {
	if err := token.Reserve(amount); err != nil {
		return err
	}
	if err := rewards.Credit(amount); err != nil {
		return err
	}
	if err := tx.SaveRewardToken(token); err != nil {
		return err
	}
	return tx.SaveUserRewards(rewards)
}

// AccrueTrade books the per-trade reward for a completed trade of volume.
// Nothing is accrued, and no error returned, when the reward token does not
// exist, the volume is below the minimum or the supply cap is reached.
func AccrueTrade(tx domain.Tx, out *guard.Outbox, user domain.Address, volume uint64, now time.Time) (uint64, error) {
	token, err := tx.GetRewardToken()
	if errors.Is(err, domain.ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if volume < token.MinTradeVolume || token.RatePerTrade == 0 {
		return 0, nil
	}
	rewards, err := loadUserRewards(tx, user)
	if err != nil {
		return 0, err
	}
	if rewards.TradingVolume, err = domain.CheckedAdd(rewards.TradingVolume, volume); err != nil {
		return 0, err
	}
	rewards.LastTradeReward = now
	err = credit(tx, token, rewards, token.RatePerTrade)
	if errors.Is(err, domain.ErrInsufficientFunds) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	out.Add(domain.EventRewardsEarned, user, domain.RewardsEvent{User: user, Amount: token.RatePerTrade, Reason: ReasonTrade})
	return token.RatePerTrade, nil
}

// AccrueVote books the per-vote reward of a juror. Skipped like AccrueTrade.
func AccrueVote(tx domain.Tx, out *guard.Outbox, juror domain.Address, now time.Time) (uint64, error) {
	token, err := tx.GetRewardToken()
	if errors.Is(err, domain.ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if token.RatePerVote == 0 {
		return 0, nil
	}
	rewards, err := loadUserRewards(tx, juror)
	if err != nil {
		return 0, err
	}
	if rewards.GovernanceVotes, err = domain.CheckedAdd(rewards.GovernanceVotes, 1); err != nil {
		return 0, err
	}
	rewards.LastVoteReward = now
	err = credit(tx, token, rewards, token.RatePerVote)
	if errors.Is(err, domain.ErrInsufficientFunds) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	out.Add(domain.EventRewardsEarned, juror, domain.RewardsEvent{User: juror, Amount: token.RatePerVote, Reason: ReasonVote})
	return token.RatePerVote, nil
}

// AccrueReward credits amount to user on behalf of the admin. Unlike the
// automatic accruals it fails when the supply cap would be exceeded.
func (uc *DefaultRewardsUsecase) AccrueReward(ctx context.Context, admin, user domain.Address, amount uint64) (*domain.UserRewards, error) {
	var result *domain.UserRewards
	err := uc.exec.Execute(ctx, "accrue_reward", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if _, err := guard.RequireAdmin(tx, admin); err != nil {
			return err
		}
		if amount == 0 {
			return fmt.Errorf("reward amount must be positive: %w", domain.ErrInvalidAmount)
		}
		token, err := loadToken(tx)
		if err != nil {
			return err
		}
		rewards, err := loadUserRewards(tx, user)
		if err != nil {
			return err
		}
		if err := credit(tx, token, rewards, amount); err != nil {
			return err
		}
		out.Add(domain.EventRewardsEarned, user, domain.RewardsEvent{User: user, Amount: amount, Reason: ReasonManual})
		result = rewards
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordRewardsAccrued(ReasonManual, amount)
	}
	return result, nil
}
