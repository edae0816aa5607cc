package domain

import "time"

// Input limits.
const (
	MinFiatCurrencyLen  = 3
	MaxFiatCurrencyLen  = 10
	MaxPaymentMethodLen = 50
	MaxDisputeReasonLen = 200
	MaxEvidenceURLLen   = 300
	MaxEvidenceItems    = 5
	JurorsPerDispute    = 3
)

// Dispute deadlines, measured from Dispute.OpenedAt.
const (
	EvidenceSubmissionDeadline = 48 * time.Hour
	VotingDeadline             = 7 * 24 * time.Hour
	TotalDisputeDeadline       = 9 * 24 * time.Hour
)

// Default rate limit windows.
const (
	OfferCreationCooldown  = 5 * time.Minute
	DisputeOpeningCooldown = time.Hour
)

// Reputation bounds and adjustments.
const (
	InitialRating      = 100
	MinRating          = 0
	MaxRating          = 1000
	TradeRatingBonus   = 10
	DisputeWonBonus    = 5
	DisputeLostPenalty = 25
	JurorRatingBonus   = 1
)

// Reward token parameter bounds.
const (
	MaxRewardRatePerTrade    uint64 = 10_000
	MaxRewardRatePerVote     uint64 = 5_000
	MinTradeVolumeLimit      uint64 = 1_000_000
	MaxTradeVolumeLimit      uint64 = 100_000_000_000
	RewardTokenUpdateBackoff        = time.Hour
)

func init() {
	if EvidenceSubmissionDeadline+VotingDeadline > TotalDisputeDeadline {
		panic("dispute deadlines exceed the total dispute deadline")
	}
}
