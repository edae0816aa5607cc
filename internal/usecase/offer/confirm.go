package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// ConfirmFiatPayment is the buyer's statement that fiat was sent. Release is
// unreachable without it.
func (uc *DefaultOfferUsecase) ConfirmFiatPayment(ctx context.Context, buyer, offerID domain.Address) (*domain.Offer, error) {
	var offer *domain.Offer
	err := uc.exec.Execute(ctx, "confirm_fiat_payment", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		o, err := tx.GetOffer(offerID)
		if err != nil {
			return err
		}
		if !o.IsBuyer(buyer) {
			return fmt.Errorf("only the buyer confirms payment: %w", domain.ErrUnauthorized)
		}
		if o.Status != domain.StatusAccepted {
			return fmt.Errorf("confirm payment from %s: %w", o.Status, domain.ErrInvalidOfferStatus)
		}
		o.Status = domain.StatusFiatSent
		o.UpdatedAt = now
		if err := tx.SaveOffer(o); err != nil {
			return err
		}
		out.Add(domain.EventFiatSent, o.ID, offerEvent(o))
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordTransition(string(domain.StatusFiatSent))
	}
	return offer, nil
}
