package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// CancelOffer returns every deposit to its depositor. The seller cancels
// before fiat confirmation; the buyer only an accepted offer and only when
// the policy allows it.
func (uc *DefaultOfferUsecase) CancelOffer(ctx context.Context, caller, offerID domain.Address) (*domain.Offer, error) {
	var (
		offer    *domain.Offer
		by       string
		refunded uint64
	)
	err := uc.exec.Execute(ctx, "cancel_offer", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		o, err := tx.GetOffer(offerID)
		if err != nil {
			return err
		}
		switch {
		case o.Seller == caller:
			by = "seller"
		case o.IsBuyer(caller) && uc.policy.BuyerMayCancel:
			by = "buyer"
		default:
			return fmt.Errorf("caller may not cancel: %w", domain.ErrUnauthorized)
		}
		switch o.Status {
		case domain.StatusCreated, domain.StatusListed, domain.StatusAccepted:
		default:
			return fmt.Errorf("cancel from %s: %w", o.Status, domain.ErrInvalidOfferStatus)
		}
		if by == "buyer" && o.Status != domain.StatusAccepted {
			return fmt.Errorf("buyer cancel from %s: %w", o.Status, domain.ErrInvalidOfferStatus)
		}

		toBuyer, toSeller, err := Refunds(o)
		if err != nil {
			return err
		}
		if uc.policy.ForfeitBondOnCancel && o.Status == domain.StatusAccepted {
			// Бонд отменившей стороны уходит контрагенту
			if by == "seller" {
				toBuyer += o.SecurityBondSeller
				toSeller -= o.SecurityBondSeller
			} else {
				toSeller += o.SecurityBondBuyer
				toBuyer -= o.SecurityBondBuyer
			}
		}
		if err := Payout(tx, o, toBuyer, toSeller, now); err != nil {
			return err
		}
		refunded = toBuyer + toSeller

		o.Status = domain.StatusCancelled
		o.UpdatedAt = now
		if err := tx.SaveOffer(o); err != nil {
			return err
		}
		out.Add(domain.EventOfferCancelled, o.ID, domain.OfferCancelledEvent{
			Offer:        o.ID,
			CancelledBy:  caller,
			SellerRefund: toSeller,
			BuyerRefund:  toBuyer,
		})
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordOfferCancelled(offer.FiatCurrency, by, refunded, offer.UpdatedAt.Sub(offer.CreatedAt).Seconds())
	}
	uc.exec.Logger.Info("offer cancelled", "offer", offer.ID.String(), "by", by)
	return offer, nil
}
