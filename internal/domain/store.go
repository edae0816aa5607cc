package domain

import (
	"context"
	"time"
)

type AdminRepository interface {
	GetAdmin() (*Admin, error)
	CreateAdmin(admin *Admin) error
	SaveAdmin(admin *Admin) error
}

type OfferRepository interface {
	GetOffer(id Address) (*Offer, error)
	CreateOffer(offer *Offer) error
	SaveOffer(offer *Offer) error
	ListOffers(filter OfferFilter) ([]*Offer, int64, error)
}

type EscrowRepository interface {
	GetEscrow(id Address) (*EscrowAccount, error)
	CreateEscrow(escrow *EscrowAccount) error
	SaveEscrow(escrow *EscrowAccount) error
}

type DisputeRepository interface {
	GetDispute(id Address) (*Dispute, error)
	CreateDispute(dispute *Dispute) error
	SaveDispute(dispute *Dispute) error
	ListDisputes(filter DisputeFilter) ([]*Dispute, int64, error)
}

type VoteRepository interface {
	GetVote(id Address) (*Vote, error)
	// CreateVote fails with ErrAccountAlreadyExists when the vote address is
	// taken. It never overwrites.
	CreateVote(vote *Vote) error
}

type ReputationRepository interface {
	GetReputation(user Address) (*Reputation, error)
	SaveReputation(rep *Reputation) error
}

type RewardRepository interface {
	GetRewardToken() (*RewardToken, error)
	CreateRewardToken(token *RewardToken) error
	SaveRewardToken(token *RewardToken) error
	GetUserRewards(user Address) (*UserRewards, error)
	SaveUserRewards(rewards *UserRewards) error
}

type RateLimitRepository interface {
	// GetRateLimit returns an empty record for an unknown key.
	GetRateLimit(key string) (*RateLimit, error)
	SaveRateLimit(limit *RateLimit) error
}

type Asset string

const (
	AssetBase   Asset = "BASE"
	AssetReward Asset = "REWARD"
)

// Ledger is the custody primitive of the host: balances of base-asset and
// reward units per address.
type Ledger interface {
	Balance(asset Asset, owner Address) (uint64, error)
	// Transfer fails with ErrInsufficientFunds when from holds less than
	// amount.
	Transfer(asset Asset, from, to Address, amount uint64) error
	Mint(asset Asset, to Address, amount uint64) error
}

// Tx is the view of every account record inside one instruction.
type Tx interface {
	AdminRepository
	OfferRepository
	EscrowRepository
	DisputeRepository
	VoteRepository
	ReputationRepository
	RewardRepository
	RateLimitRepository
	Ledger
}

// Store runs instructions atomically: when fn returns an error none of its
// writes are visible.
type Store interface {
	Atomically(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(tx Tx) error) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
