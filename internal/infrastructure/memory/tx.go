package memory

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

// Tx is an open instruction over a Store.
type Tx struct {
	t tables
}

func (tx *Tx) commit() {
	tx.t.admins.commit()
	tx.t.offers.commit()
	tx.t.escrows.commit()
	tx.t.disputes.commit()
	tx.t.votes.commit()
	tx.t.reputations.commit()
	tx.t.tokens.commit()
	tx.t.userRewards.commit()
	tx.t.limits.commit()
	tx.t.balances.commit()
}

func notFound(kind string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrAccountNotFound)
}

func exists(kind string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrAccountAlreadyExists)
}

func (tx *Tx) GetAdmin() (*domain.Admin, error) {
	id := domain.AdminAddress()
	admin, ok := tx.t.admins.get(id)
	if !ok {
		return nil, notFound("admin", id)
	}
	return admin, nil
}

func (tx *Tx) CreateAdmin(admin *domain.Admin) error {
	if _, ok := tx.t.admins.get(admin.ID); ok {
		return exists("admin", admin.ID)
	}
	tx.t.admins.put(admin.ID, admin)
	return nil
}

func (tx *Tx) SaveAdmin(admin *domain.Admin) error {
	tx.t.admins.put(admin.ID, admin)
	return nil
}

func (tx *Tx) GetOffer(id domain.Address) (*domain.Offer, error) {
	offer, ok := tx.t.offers.get(id)
	if !ok {
		return nil, notFound("offer", id)
	}
	return offer, nil
}

func (tx *Tx) CreateOffer(offer *domain.Offer) error {
	if _, ok := tx.t.offers.get(offer.ID); ok {
		return exists("offer", offer.ID)
	}
	tx.t.offers.put(offer.ID, offer)
	return nil
}

func (tx *Tx) SaveOffer(offer *domain.Offer) error {
	tx.t.offers.put(offer.ID, offer)
	return nil
}

func (tx *Tx) ListOffers(filter domain.OfferFilter) ([]*domain.Offer, int64, error) {
	var matched []*domain.Offer
	tx.t.offers.each(func(o *domain.Offer) {
		if filter.Status != nil && o.Status != *filter.Status {
			return
		}
		if filter.Seller != nil && o.Seller != *filter.Seller {
			return
		}
		if filter.Buyer != nil && !o.IsBuyer(*filter.Buyer) {
			return
		}
		matched = append(matched, o)
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) < 0
	})
	return paginate(matched, filter.Page, filter.Limit), int64(len(matched)), nil
}

func (tx *Tx) GetEscrow(id domain.Address) (*domain.EscrowAccount, error) {
	escrow, ok := tx.t.escrows.get(id)
	if !ok {
		return nil, notFound("escrow", id)
	}
	return escrow, nil
}

func (tx *Tx) CreateEscrow(escrow *domain.EscrowAccount) error {
	if _, ok := tx.t.escrows.get(escrow.ID); ok {
		return exists("escrow", escrow.ID)
	}
	tx.t.escrows.put(escrow.ID, escrow)
	return nil
}

func (tx *Tx) SaveEscrow(escrow *domain.EscrowAccount) error {
	tx.t.escrows.put(escrow.ID, escrow)
	return nil
}

func (tx *Tx) GetDispute(id domain.Address) (*domain.Dispute, error) {
	dispute, ok := tx.t.disputes.get(id)
	if !ok {
		return nil, notFound("dispute", id)
	}
	return dispute, nil
}

func (tx *Tx) CreateDispute(dispute *domain.Dispute) error {
	if _, ok := tx.t.disputes.get(dispute.ID); ok {
		return exists("dispute", dispute.ID)
	}
	tx.t.disputes.put(dispute.ID, dispute)
	return nil
}

func (tx *Tx) SaveDispute(dispute *domain.Dispute) error {
	tx.t.disputes.put(dispute.ID, dispute)
	return nil
}

func (tx *Tx) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	var matched []*domain.Dispute
	tx.t.disputes.each(func(d *domain.Dispute) {
		if filter.Status != nil && d.Status != *filter.Status {
			return
		}
		if filter.Unresolved && d.Status == domain.DisputeResolved {
			return
		}
		if filter.OpenedBefore != nil && d.OpenedAt.After(*filter.OpenedBefore) {
			return
		}
		matched = append(matched, d)
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].OpenedAt.Equal(matched[j].OpenedAt) {
			return matched[i].OpenedAt.After(matched[j].OpenedAt)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) < 0
	})
	return paginate(matched, filter.Page, filter.Limit), int64(len(matched)), nil
}

func (tx *Tx) GetVote(id domain.Address) (*domain.Vote, error) {
	vote, ok := tx.t.votes.get(id)
	if !ok {
		return nil, notFound("vote", id)
	}
	return vote, nil
}

func (tx *Tx) CreateVote(vote *domain.Vote) error {
	if _, ok := tx.t.votes.get(vote.ID); ok {
		return exists("vote", vote.ID)
	}
	tx.t.votes.put(vote.ID, vote)
	return nil
}

func (tx *Tx) GetReputation(user domain.Address) (*domain.Reputation, error) {
	rep, ok := tx.t.reputations.get(domain.ReputationAddress(user))
	if !ok {
		return nil, notFound("reputation of", user)
	}
	return rep, nil
}

func (tx *Tx) SaveReputation(rep *domain.Reputation) error {
	tx.t.reputations.put(rep.ID, rep)
	return nil
}

func (tx *Tx) GetRewardToken() (*domain.RewardToken, error) {
	id := domain.RewardTokenAddress()
	token, ok := tx.t.tokens.get(id)
	if !ok {
		return nil, notFound("reward token", id)
	}
	return token, nil
}

func (tx *Tx) CreateRewardToken(token *domain.RewardToken) error {
	if _, ok := tx.t.tokens.get(token.ID); ok {
		return exists("reward token", token.ID)
	}
	tx.t.tokens.put(token.ID, token)
	return nil
}

func (tx *Tx) SaveRewardToken(token *domain.RewardToken) error {
	tx.t.tokens.put(token.ID, token)
	return nil
}

func (tx *Tx) GetUserRewards(user domain.Address) (*domain.UserRewards, error) {
	rewards, ok := tx.t.userRewards.get(domain.UserRewardsAddress(user))
	if !ok {
		return nil, notFound("rewards of", user)
	}
	return rewards, nil
}

func (tx *Tx) SaveUserRewards(rewards *domain.UserRewards) error {
	tx.t.userRewards.put(rewards.ID, rewards)
	return nil
}

func (tx *Tx) GetRateLimit(key string) (*domain.RateLimit, error) {
	limit, ok := tx.t.limits.get(key)
	if !ok {
		return &domain.RateLimit{Key: key}, nil
	}
	return limit, nil
}

func (tx *Tx) SaveRateLimit(limit *domain.RateLimit) error {
	tx.t.limits.put(limit.Key, limit)
	return nil
}

func (tx *Tx) Balance(asset domain.Asset, owner domain.Address) (uint64, error) {
	balance, _ := tx.t.balances.get(ledgerKey{asset, owner})
	return balance, nil
}

func (tx *Tx) Transfer(asset domain.Asset, from, to domain.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	src, _ := tx.t.balances.get(ledgerKey{asset, from})
	if src < amount {
		return fmt.Errorf("%s holds %d %s, needs %d: %w", from, src, asset, amount, domain.ErrInsufficientFunds)
	}
	dst, _ := tx.t.balances.get(ledgerKey{asset, to})
	credited, err := domain.CheckedAdd(dst, amount)
	if err != nil {
		return err
	}
	tx.t.balances.put(ledgerKey{asset, from}, src-amount)
	tx.t.balances.put(ledgerKey{asset, to}, credited)
	return nil
}

func (tx *Tx) Mint(asset domain.Asset, to domain.Address, amount uint64) error {
	dst, _ := tx.t.balances.get(ledgerKey{asset, to})
	credited, err := domain.CheckedAdd(dst, amount)
	if err != nil {
		return err
	}
	tx.t.balances.put(ledgerKey{asset, to}, credited)
	return nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
