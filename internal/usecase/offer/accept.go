package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	offerdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// AcceptOffer makes the caller the only buyer of a listed offer and locks
// the optional buyer bond.
func (uc *DefaultOfferUsecase) AcceptOffer(ctx context.Context, input *offerdto.AcceptOfferInput) (*domain.Offer, error) {
	var offer *domain.Offer
	err := uc.exec.Execute(ctx, "accept_offer", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		o, err := tx.GetOffer(input.Offer)
		if err != nil {
			return err
		}
		if o.Status != domain.StatusListed {
			return fmt.Errorf("accept from %s: %w", o.Status, domain.ErrInvalidOfferStatus)
		}
		if o.Seller == input.Buyer {
			return fmt.Errorf("seller cannot accept own offer: %w", domain.ErrUnauthorized)
		}
		if err := uc.limiter.Allow(tx, input.Buyer, guard.ActionOfferAccept, now); err != nil {
			return err
		}
		if _, err := domain.CheckedSum(o.Amount, o.SecurityBondSeller, input.Bond); err != nil {
			return err
		}
		if err := tx.Transfer(domain.AssetBase, input.Buyer, domain.EscrowAddress(o.ID), input.Bond); err != nil {
			return err
		}
		buyer := input.Buyer
		o.Buyer = &buyer
		o.SecurityBondBuyer = input.Bond
		o.Status = domain.StatusAccepted
		o.UpdatedAt = now
		if err := tx.SaveOffer(o); err != nil {
			return err
		}
		out.Add(domain.EventOfferAccepted, o.ID, offerEvent(o))
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordTransition(string(domain.StatusAccepted))
	}
	uc.exec.Logger.Info("offer accepted", "offer", offer.ID.String(), "buyer", input.Buyer.String())
	return offer, nil
}
