package request

import "github.com/LavaJover/shvark-p2p-exchange/internal/domain"

type RewardTokenRequest struct {
	RatePerTrade   uint64 `json:"rate_per_trade"`
	RatePerVote    uint64 `json:"rate_per_vote"`
	MinTradeVolume uint64 `json:"min_trade_volume"`
	MaxSupply      uint64 `json:"max_supply"`
}

type AccrueRewardRequest struct {
	Amount uint64 `json:"amount"`
}

type UpdateReputationRequest struct {
	Outcome domain.Outcome `json:"outcome"`
}

type DepositRequest struct {
	Owner  domain.Address `json:"owner"`
	Asset  domain.Asset   `json:"asset"`
	Amount uint64         `json:"amount"`
}
