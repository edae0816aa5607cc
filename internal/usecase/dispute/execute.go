package dispute

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	offeruc "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
)

// ExecuteVerdict pays the escrow out according to the verdict and closes
// the dispute. Once TotalDisputeDeadline has passed without a reached
// verdict anyone may force a refund, so no escrow stays locked forever.
func (uc *DefaultDisputeUsecase) ExecuteVerdict(ctx context.Context, executor, disputeID domain.Address) (*disputedto.ExecuteVerdictOutput, error) {
	var output disputedto.ExecuteVerdictOutput
	err := uc.exec.Execute(ctx, "execute_verdict", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		d, err := tx.GetDispute(disputeID)
		if err != nil {
			return err
		}
		if d.Status == domain.DisputeResolved {
			return fmt.Errorf("dispute already resolved: %w", domain.ErrInvalidDisputeStatus)
		}
		offer, err := tx.GetOffer(d.Offer)
		if err != nil {
			return err
		}
		if offer.Status != domain.StatusDisputeOpened {
			return fmt.Errorf("offer in %s: %w", offer.Status, domain.ErrInvalidOfferStatus)
		}

		verdict := d.Verdict
		forced := d.Status != domain.DisputeVerdictReached
		if forced {
			if now.Before(d.ForceDeadline()) {
				return fmt.Errorf("no verdict in %s: %w", d.Status, domain.ErrInvalidDisputeStatus)
			}
			verdict = domain.VerdictRefund
		} else if now.Before(d.ForceDeadline()) {
			if err := authorizeExecutor(tx, d, executor); err != nil {
				return err
			}
		}

		toBuyer, toSeller, err := payouts(offer, verdict)
		if err != nil {
			return err
		}
		if err := offeruc.Payout(tx, offer, toBuyer, toSeller, now); err != nil {
			return err
		}

		buyer := *offer.Buyer
		switch verdict {
		case domain.VerdictFavorBuyer:
			offer.Status = domain.StatusCompleted
			err = settleReputation(tx, out, buyer, offer.Seller, now)
		case domain.VerdictFavorSeller:
			offer.Status = domain.StatusCancelled
			err = settleReputation(tx, out, offer.Seller, buyer, now)
		default:
			offer.Status = domain.StatusCancelled
			for _, party := range []domain.Address{offer.Seller, buyer} {
				if _, err = reputation.Record(tx, out, party, domain.OutcomeDisputeNeutral, now); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
		offer.UpdatedAt = now
		if err := tx.SaveOffer(offer); err != nil {
			return err
		}

		d.Verdict = verdict
		d.Status = domain.DisputeResolved
		d.ResolvedAt = &now
		if err := tx.SaveDispute(d); err != nil {
			return err
		}
		out.Add(domain.EventVerdictExecuted, offer.ID, domain.VerdictEvent{
			Dispute:      d.ID,
			Offer:        offer.ID,
			Verdict:      verdict,
			Forced:       forced,
			BuyerPayout:  toBuyer,
			SellerPayout: toSeller,
		})
		output = disputedto.ExecuteVerdictOutput{
			Dispute:      d,
			Offer:        offer,
			Forced:       forced,
			BuyerPayout:  toBuyer,
			SellerPayout: toSeller,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordResolution(&output)
	uc.exec.Logger.Info("verdict executed",
		"dispute", output.Dispute.ID.String(),
		"verdict", output.Dispute.Verdict,
		"forced", output.Forced,
		"buyer_payout", output.BuyerPayout,
		"seller_payout", output.SellerPayout,
	)
	return &output, nil
}

func authorizeExecutor(tx domain.Tx, d *domain.Dispute, executor domain.Address) error {
	if d.IsParty(executor) {
		return nil
	}
	isAdmin, err := guard.IsAdmin(tx, executor)
	if err != nil {
		return err
	}
	if !isAdmin {
		return fmt.Errorf("executor %s: %w", executor, domain.ErrUnauthorized)
	}
	return nil
}

// payouts splits the escrow of offer by verdict.
func payouts(offer *domain.Offer, verdict domain.Verdict) (toBuyer, toSeller uint64, err error) {
	owed, err := offer.EscrowOwed()
	if err != nil {
		return 0, 0, err
	}
	switch verdict {
	case domain.VerdictFavorBuyer:
		return owed, 0, nil
	case domain.VerdictFavorSeller:
		return 0, owed, nil
	case domain.VerdictRefund:
		return offeruc.Refunds(offer)
	}
	return 0, 0, fmt.Errorf("verdict %q: %w", verdict, domain.ErrInvalidDisputeStatus)
}

func settleReputation(tx domain.Tx, out *guard.Outbox, winner, loser domain.Address, now time.Time) error {
	if _, err := reputation.Record(tx, out, winner, domain.OutcomeDisputeWon, now); err != nil {
		return err
	}
	_, err := reputation.Record(tx, out, loser, domain.OutcomeDisputeLost, now)
	return err
}

func (uc *DefaultDisputeUsecase) recordResolution(output *disputedto.ExecuteVerdictOutput) {
	if uc.exec.Metrics == nil {
		return
	}
	offer := output.Offer
	lifetime := offer.UpdatedAt.Sub(offer.CreatedAt).Seconds()
	paid := output.BuyerPayout + output.SellerPayout
	uc.exec.Metrics.RecordDisputeResolved(string(output.Dispute.Verdict), output.Forced)
	if offer.Status == domain.StatusCompleted {
		uc.exec.Metrics.RecordOfferCompleted(offer.FiatCurrency, "verdict", paid, lifetime)
	} else {
		uc.exec.Metrics.RecordOfferCancelled(offer.FiatCurrency, "verdict", paid, lifetime)
	}
}
