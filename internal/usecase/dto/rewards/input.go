package rewardsdto

import "github.com/LavaJover/shvark-p2p-exchange/internal/domain"

type RewardTokenParams struct {
	RatePerTrade   uint64
	RatePerVote    uint64
	MinTradeVolume uint64
	MaxSupply      uint64
}

type CreateRewardTokenInput struct {
	Admin domain.Address
	RewardTokenParams
}

type UpdateRewardTokenInput struct {
	Admin domain.Address
	RewardTokenParams
}

type ClaimRewardsOutput struct {
	Rewards *domain.UserRewards
	Claimed uint64
	// Balance is the user's reward-asset ledger balance after the claim.
	Balance uint64
}
