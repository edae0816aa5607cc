package offer

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

// CheckEscrow recomputes the escrow balance from the ledger and requires it
// to equal exactly what the offer owes. Any other balance aborts the
// instruction before funds move.
func CheckEscrow(tx domain.Tx, offer *domain.Offer) (uint64, error) {
	owed, err := offer.EscrowOwed()
	if err != nil {
		return 0, err
	}
	balance, err := tx.Balance(domain.AssetBase, domain.EscrowAddress(offer.ID))
	if err != nil {
		return 0, fmt.Errorf("read escrow balance: %w", err)
	}
	if balance != owed {
		return 0, fmt.Errorf("escrow of %s holds %d, owes %d: %w", offer.ID, balance, owed, domain.ErrInvalidEscrowBalance)
	}
	return owed, nil
}

// Payout empties the escrow of offer: toBuyer goes to the buyer, toSeller
// to the seller. The two must add up to the checked escrow balance.
func Payout(tx domain.Tx, offer *domain.Offer, toBuyer, toSeller uint64, now time.Time) error {
	owed, err := CheckEscrow(tx, offer)
	if err != nil {
		return err
	}
	total, err := domain.CheckedAdd(toBuyer, toSeller)
	if err != nil {
		return err
	}
	if total != owed {
		return fmt.Errorf("payout %d does not drain escrow %d: %w", total, owed, domain.ErrInvalidEscrowBalance)
	}
	escrowID := domain.EscrowAddress(offer.ID)
	if toBuyer > 0 {
		if offer.Buyer == nil {
			return fmt.Errorf("payout to missing buyer: %w", domain.ErrInvalidOfferStatus)
		}
		if err := tx.Transfer(domain.AssetBase, escrowID, *offer.Buyer, toBuyer); err != nil {
			return err
		}
	}
	if err := tx.Transfer(domain.AssetBase, escrowID, offer.Seller, toSeller); err != nil {
		return err
	}
	return closeEscrow(tx, escrowID, now)
}

// Refunds returns what each party deposited into the escrow of offer.
func Refunds(offer *domain.Offer) (toBuyer, toSeller uint64, err error) {
	toSeller, err = domain.CheckedAdd(offer.Amount, offer.SecurityBondSeller)
	if err != nil {
		return 0, 0, err
	}
	return offer.SecurityBondBuyer, toSeller, nil
}

func closeEscrow(tx domain.Tx, escrowID domain.Address, now time.Time) error {
	escrow, err := tx.GetEscrow(escrowID)
	if err != nil {
		return err
	}
	escrow.ClosedAt = &now
	return tx.SaveEscrow(escrow)
}

func offerEvent(o *domain.Offer) domain.OfferEvent {
	return domain.OfferEvent{
		Offer:    o.ID,
		Seller:   o.Seller,
		Buyer:    o.Buyer,
		Amount:   o.Amount,
		Status:   o.Status,
		Currency: o.FiatCurrency,
	}
}
