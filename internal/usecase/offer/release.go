package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/rewards"
)

// ReleaseSol pays the escrow out after the buyer confirmed the fiat payment:
// amount and buyer bond to the buyer, the seller bond back to the seller.
func (uc *DefaultOfferUsecase) ReleaseSol(ctx context.Context, seller, offerID domain.Address) (*domain.Offer, error) {
	var (
		offer   *domain.Offer
		paid    uint64
		accrued uint64
	)
	err := uc.exec.Execute(ctx, "release_sol", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		o, err := tx.GetOffer(offerID)
		if err != nil {
			return err
		}
		if o.Seller != seller {
			return fmt.Errorf("only the seller releases: %w", domain.ErrUnauthorized)
		}
		if o.Status != domain.StatusFiatSent {
			return fmt.Errorf("release from %s: %w", o.Status, domain.ErrInvalidOfferStatus)
		}
		toBuyer, err := domain.CheckedAdd(o.Amount, o.SecurityBondBuyer)
		if err != nil {
			return err
		}
		if err := Payout(tx, o, toBuyer, o.SecurityBondSeller, now); err != nil {
			return err
		}
		paid = toBuyer

		// SolReleased is observable only through its event; the offer
		// settles in Completed within the same instruction.
		o.Status = domain.StatusSolReleased
		out.Add(domain.EventSolReleased, o.ID, domain.SolReleasedEvent{
			Offer:        o.ID,
			Buyer:        *o.Buyer,
			Seller:       o.Seller,
			BuyerPayout:  toBuyer,
			SellerRefund: o.SecurityBondSeller,
		})
		o.Status = domain.StatusCompleted
		o.UpdatedAt = now
		if err := tx.SaveOffer(o); err != nil {
			return err
		}

		for _, party := range []domain.Address{o.Seller, *o.Buyer} {
			if _, err := reputation.Record(tx, out, party, domain.OutcomeTradeCompleted, now); err != nil {
				return err
			}
			amount, err := rewards.AccrueTrade(tx, out, party, o.Amount, now)
			if err != nil {
				return err
			}
			accrued += amount
		}
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordTransition(string(domain.StatusSolReleased))
		uc.exec.Metrics.RecordOfferCompleted(offer.FiatCurrency, "release", paid, offer.UpdatedAt.Sub(offer.CreatedAt).Seconds())
		if accrued > 0 {
			uc.exec.Metrics.RecordRewardsAccrued(rewards.ReasonTrade, accrued)
		}
	}
	uc.exec.Logger.Info("escrow released",
		"offer", offer.ID.String(),
		"buyer", offer.Buyer.String(),
		"amount", paid,
	)
	return offer, nil
}
