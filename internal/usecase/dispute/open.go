package dispute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// OpenDispute freezes an accepted offer until the dispute is resolved.
func (uc *DefaultDisputeUsecase) OpenDispute(ctx context.Context, input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	reason, err := domain.NormalizeText("dispute reason", input.Reason, domain.MaxDisputeReasonLen)
	if err != nil {
		return nil, err
	}

	var dispute *domain.Dispute
	err = uc.exec.Execute(ctx, "open_dispute", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		offer, err := tx.GetOffer(input.Offer)
		if err != nil {
			return err
		}
		if !offer.IsParty(input.Initiator) {
			return fmt.Errorf("only a trade party opens a dispute: %w", domain.ErrUnauthorized)
		}
		id := domain.DisputeAddress(offer.ID)
		if _, err := tx.GetDispute(id); err == nil {
			return domain.ErrDisputeAlreadyExists
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		if offer.Status != domain.StatusAccepted && offer.Status != domain.StatusFiatSent {
			return fmt.Errorf("dispute from %s: %w", offer.Status, domain.ErrInvalidOfferStatus)
		}
		if err := uc.limiter.Allow(tx, input.Initiator, guard.ActionDisputeOpen, now); err != nil {
			return err
		}

		respondent := offer.Seller
		if input.Initiator == offer.Seller {
			respondent = *offer.Buyer
		}
		dispute = &domain.Dispute{
			ID:               id,
			Offer:            offer.ID,
			Initiator:        input.Initiator,
			Respondent:       respondent,
			Reason:           reason,
			Status:           domain.DisputeOpened,
			OpenedAt:         now,
			EvidenceDeadline: now.Add(domain.EvidenceSubmissionDeadline),
			VotingDeadline:   now.Add(domain.EvidenceSubmissionDeadline + domain.VotingDeadline),
		}
		if err := tx.CreateDispute(dispute); err != nil {
			if errors.Is(err, domain.ErrAccountAlreadyExists) {
				return domain.ErrDisputeAlreadyExists
			}
			return err
		}
		offer.Status = domain.StatusDisputeOpened
		offer.DisputeID = &id
		offer.UpdatedAt = now
		if err := tx.SaveOffer(offer); err != nil {
			return err
		}
		out.Add(domain.EventDisputeOpened, offer.ID, domain.DisputeEvent{
			Dispute: id,
			Offer:   offer.ID,
			Actor:   input.Initiator,
			Status:  dispute.Status,
			Reason:  reason,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordDisputeOpened()
	}
	uc.exec.Logger.Info("dispute opened",
		"dispute", dispute.ID.String(),
		"offer", dispute.Offer.String(),
		"initiator", dispute.Initiator.String(),
	)
	return dispute, nil
}
