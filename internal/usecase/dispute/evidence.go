package dispute

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

func (uc *DefaultDisputeUsecase) SubmitEvidence(ctx context.Context, party, disputeID domain.Address, url string) (*domain.Dispute, error) {
	url, err := domain.NormalizeEvidenceURL(url)
	if err != nil {
		return nil, err
	}

	var dispute *domain.Dispute
	err = uc.exec.Execute(ctx, "submit_evidence", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		d, err := tx.GetDispute(disputeID)
		if err != nil {
			return err
		}
		if !d.IsParty(party) {
			return fmt.Errorf("only a dispute party submits evidence: %w", domain.ErrUnauthorized)
		}
		if d.Status != domain.DisputeJurorsAssigned && d.Status != domain.DisputeEvidenceSubmission {
			return fmt.Errorf("evidence in %s: %w", d.Status, domain.ErrInvalidDisputeStatus)
		}
		if !now.Before(d.EvidenceDeadline) {
			return fmt.Errorf("evidence window closed at %s: %w", d.EvidenceDeadline.Format(time.RFC3339), domain.ErrDisputeExpired)
		}
		if len(d.Evidence) >= domain.MaxEvidenceItems {
			return domain.ErrTooManyEvidenceItems
		}
		d.Evidence = append(d.Evidence, domain.Evidence{
			Submitter:   party,
			URL:         url,
			SubmittedAt: now,
		})
		d.Status = domain.DisputeEvidenceSubmission
		if err := tx.SaveDispute(d); err != nil {
			return err
		}
		out.Add(domain.EventEvidenceSubmitted, d.Offer, domain.DisputeEvent{
			Dispute: d.ID,
			Offer:   d.Offer,
			Actor:   party,
			Status:  d.Status,
			URL:     url,
		})
		dispute = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordEvidence()
	}
	return dispute, nil
}
