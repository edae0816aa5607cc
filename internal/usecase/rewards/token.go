package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	rewardsdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/rewards"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

func (uc *DefaultRewardsUsecase) CreateRewardToken(ctx context.Context, input *rewardsdto.CreateRewardTokenInput) (*domain.RewardToken, error) {
	var token *domain.RewardToken
	err := uc.exec.Execute(ctx, "create_reward_token", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if _, err := guard.RequireAdmin(tx, input.Admin); err != nil {
			return err
		}
		if err := validateParams(input.RewardTokenParams); err != nil {
			return err
		}
		if input.MaxSupply == 0 {
			return fmt.Errorf("max supply must be positive: %w", domain.ErrInvalidAmount)
		}
		token = &domain.RewardToken{
			ID:             domain.RewardTokenAddress(),
			Authority:      input.Admin,
			RatePerTrade:   input.RatePerTrade,
			RatePerVote:    input.RatePerVote,
			MinTradeVolume: input.MinTradeVolume,
			MaxSupply:      input.MaxSupply,
			CreatedAt:      now,
			LastUpdated:    now,
		}
		if err := tx.CreateRewardToken(token); err != nil {
			return err
		}
		out.Add(domain.EventRewardTokenUpdated, token.ID, domain.RewardTokenUpdatedEvent{
			RatePerTrade:   token.RatePerTrade,
			RatePerVote:    token.RatePerVote,
			MinTradeVolume: token.MinTradeVolume,
			MaxSupply:      token.MaxSupply,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.exec.Logger.Info("reward token created", "max_supply", token.MaxSupply)
	return token, nil
}

// UpdateRewardToken changes the reward parameters at most once per
// RewardTokenUpdateBackoff. A zero MaxSupply keeps the current cap.
func (uc *DefaultRewardsUsecase) UpdateRewardToken(ctx context.Context, input *rewardsdto.UpdateRewardTokenInput) (*domain.RewardToken, error) {
	var token *domain.RewardToken
	err := uc.exec.Execute(ctx, "update_reward_token", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if _, err := guard.RequireAdmin(tx, input.Admin); err != nil {
			return err
		}
		current, err := loadToken(tx)
		if err != nil {
			return err
		}
		if now.Sub(current.LastUpdated) < domain.RewardTokenUpdateBackoff {
			return fmt.Errorf("reward token updated at %s: %w", current.LastUpdated.Format(time.RFC3339), domain.ErrTooManyRequests)
		}
		if err := validateParams(input.RewardTokenParams); err != nil {
			return err
		}
		if input.MaxSupply != 0 {
			committed, err := domain.CheckedAdd(current.TotalSupply, current.TotalOutstanding)
			if err != nil {
				return err
			}
			if input.MaxSupply < committed {
				return fmt.Errorf("max supply %d below committed %d: %w", input.MaxSupply, committed, domain.ErrInvalidAmount)
			}
			current.MaxSupply = input.MaxSupply
		}
		current.RatePerTrade = input.RatePerTrade
		current.RatePerVote = input.RatePerVote
		current.MinTradeVolume = input.MinTradeVolume
		current.LastUpdated = now
		if err := tx.SaveRewardToken(current); err != nil {
			return err
		}
		token = current
		out.Add(domain.EventRewardTokenUpdated, current.ID, domain.RewardTokenUpdatedEvent{
			RatePerTrade:   current.RatePerTrade,
			RatePerVote:    current.RatePerVote,
			MinTradeVolume: current.MinTradeVolume,
			MaxSupply:      current.MaxSupply,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func loadToken(repo domain.RewardRepository) (*domain.RewardToken, error) {
	token, err := repo.GetRewardToken()
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, domain.ErrRewardTokenNotInitialized
	}
	return token, err
}
