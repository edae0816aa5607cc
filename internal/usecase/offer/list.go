package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

func (uc *DefaultOfferUsecase) ListOffer(ctx context.Context, seller, offerID domain.Address) (*domain.Offer, error) {
	var offer *domain.Offer
	err := uc.exec.Execute(ctx, "list_offer", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		o, err := tx.GetOffer(offerID)
		if err != nil {
			return err
		}
		if o.Seller != seller {
			return fmt.Errorf("only the seller lists an offer: %w", domain.ErrUnauthorized)
		}
		if o.Status != domain.StatusCreated {
			return fmt.Errorf("list from %s: %w", o.Status, domain.ErrInvalidOfferStatus)
		}
		o.Status = domain.StatusListed
		o.UpdatedAt = now
		if err := tx.SaveOffer(o); err != nil {
			return err
		}
		out.Add(domain.EventOfferListed, o.ID, offerEvent(o))
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordTransition(string(domain.StatusListed))
	}
	return offer, nil
}
