package rewards

import (
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	rewardsdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/rewards"
)

func validateParams(p rewardsdto.RewardTokenParams) error {
	if p.RatePerTrade > domain.MaxRewardRatePerTrade {
		return fmt.Errorf("rate per trade %d above %d: %w", p.RatePerTrade, domain.MaxRewardRatePerTrade, domain.ErrInvalidAmount)
	}
	if p.RatePerVote > domain.MaxRewardRatePerVote {
		return fmt.Errorf("rate per vote %d above %d: %w", p.RatePerVote, domain.MaxRewardRatePerVote, domain.ErrInvalidAmount)
	}
	if p.MinTradeVolume < domain.MinTradeVolumeLimit || p.MinTradeVolume > domain.MaxTradeVolumeLimit {
		return fmt.Errorf("min trade volume %d outside [%d, %d]: %w",
			p.MinTradeVolume, domain.MinTradeVolumeLimit, domain.MaxTradeVolumeLimit, domain.ErrInvalidAmount)
	}
	return nil
}
