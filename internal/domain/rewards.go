package domain

import "time"

// RewardToken is the global reward mint record.
type RewardToken struct {
	ID               Address
	Authority        Address
	RatePerTrade     uint64
	RatePerVote      uint64
	MinTradeVolume   uint64
	MaxSupply        uint64
	TotalSupply      uint64
	TotalOutstanding uint64
	CreatedAt        time.Time
	LastUpdated      time.Time
}

// Reserve books amount as outstanding. TotalSupply+TotalOutstanding may
// never exceed MaxSupply.
func (t *RewardToken) Reserve(amount uint64) error {
	outstanding, err := CheckedAdd(t.TotalOutstanding, amount)
	if err != nil {
		return err
	}
	committed, err := CheckedAdd(t.TotalSupply, outstanding)
	if err != nil {
		return err
	}
	if committed > t.MaxSupply {
		return ErrInsufficientFunds
	}
	t.TotalOutstanding = outstanding
	return nil
}

// Settle moves amount from outstanding to minted supply.
func (t *RewardToken) Settle(amount uint64) error {
	outstanding, err := CheckedSub(t.TotalOutstanding, amount)
	if err != nil {
		return err
	}
	supply, err := CheckedAdd(t.TotalSupply, amount)
	if err != nil {
		return err
	}
	t.TotalOutstanding = outstanding
	t.TotalSupply = supply
	return nil
}

type UserRewards struct {
	ID               Address
	User             Address
	TotalEarned      uint64
	TotalClaimed     uint64
	UnclaimedBalance uint64
	TradingVolume    uint64
	GovernanceVotes  uint64
	LastTradeReward  time.Time
	LastVoteReward   time.Time
}

func NewUserRewards(user Address) *UserRewards {
	return &UserRewards{ID: UserRewardsAddress(user), User: user}
}

// Credit adds amount to the earned and unclaimed balances.
func (u *UserRewards) Credit(amount uint64) error {
	earned, err := CheckedAdd(u.TotalEarned, amount)
	if err != nil {
		return err
	}
	unclaimed, err := CheckedAdd(u.UnclaimedBalance, amount)
	if err != nil {
		return err
	}
	u.TotalEarned = earned
	u.UnclaimedBalance = unclaimed
	return nil
}
