package models

import "time"

type ReputationModel struct {
	ID               string `gorm:"primaryKey;type:char(64)"`
	UserAddress      string `gorm:"type:char(64);not null;uniqueIndex"`
	SuccessfulTrades uint32 `gorm:"not null;default:0"`
	DisputedTrades   uint32 `gorm:"not null;default:0"`
	DisputesWon      uint32 `gorm:"not null;default:0"`
	DisputesLost     uint32 `gorm:"not null;default:0"`
	JurorVotes       uint32 `gorm:"not null;default:0"`
	Rating           uint16 `gorm:"not null"`
	LastUpdated      time.Time
}

func (ReputationModel) TableName() string {
	return "reputations"
}

type RewardTokenModel struct {
	ID               string `gorm:"primaryKey;type:char(64)"`
	Authority        string `gorm:"type:char(64);not null"`
	RatePerTrade     uint64 `gorm:"not null"`
	RatePerVote      uint64 `gorm:"not null"`
	MinTradeVolume   uint64 `gorm:"not null"`
	MaxSupply        uint64 `gorm:"not null"`
	TotalSupply      uint64 `gorm:"not null;default:0"`
	TotalOutstanding uint64 `gorm:"not null;default:0"`
	CreatedAt        time.Time
	LastUpdated      time.Time
}

func (RewardTokenModel) TableName() string {
	return "reward_tokens"
}

type UserRewardsModel struct {
	ID               string `gorm:"primaryKey;type:char(64)"`
	UserAddress      string `gorm:"type:char(64);not null;uniqueIndex"`
	TotalEarned      uint64 `gorm:"not null;default:0"`
	TotalClaimed     uint64 `gorm:"not null;default:0"`
	UnclaimedBalance uint64 `gorm:"not null;default:0"`
	TradingVolume    uint64 `gorm:"not null;default:0"`
	GovernanceVotes  uint64 `gorm:"not null;default:0"`
	LastTradeReward  time.Time
	LastVoteReward   time.Time
}

func (UserRewardsModel) TableName() string {
	return "user_rewards"
}
