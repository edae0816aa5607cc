package dispute

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

// FinalizeVerdict fixes the verdict once voting ended or every juror voted.
// Anyone may call it.
func (uc *DefaultDisputeUsecase) FinalizeVerdict(ctx context.Context, executor, disputeID domain.Address) (*domain.Dispute, error) {
	var dispute *domain.Dispute
	err := uc.exec.Execute(ctx, "finalize_verdict", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		d, err := tx.GetDispute(disputeID)
		if err != nil {
			return err
		}
		switch d.Status {
		case domain.DisputeJurorsAssigned, domain.DisputeEvidenceSubmission, domain.DisputeVoting:
		default:
			return fmt.Errorf("finalize in %s: %w", d.Status, domain.ErrInvalidDisputeStatus)
		}
		allVoted := len(d.Jurors) > 0 && d.VotesCast() == uint32(len(d.Jurors))
		if !allVoted && now.Before(d.VotingDeadline) {
			return fmt.Errorf("voting open until %s: %w", d.VotingDeadline.Format(time.RFC3339), domain.ErrInvalidDisputeStatus)
		}
		verdict, err := uc.decide(d)
		if err != nil {
			return err
		}
		d.Verdict = verdict
		d.Status = domain.DisputeVerdictReached
		if err := tx.SaveDispute(d); err != nil {
			return err
		}
		out.Add(domain.EventVerdictReached, d.Offer, domain.VerdictEvent{
			Dispute: d.ID,
			Offer:   d.Offer,
			Verdict: verdict,
		})
		dispute = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.exec.Logger.Info("verdict reached",
		"dispute", dispute.ID.String(),
		"verdict", dispute.Verdict,
		"for_buyer", dispute.VotesForBuyer,
		"for_seller", dispute.VotesForSeller,
		"executor", executor.String(),
	)
	return dispute, nil
}

// decide applies simple majority; a tie follows the tie-break policy.
func (uc *DefaultDisputeUsecase) decide(d *domain.Dispute) (domain.Verdict, error) {
	switch {
	case d.VotesForBuyer > d.VotesForSeller:
		return domain.VerdictFavorBuyer, nil
	case d.VotesForSeller > d.VotesForBuyer:
		return domain.VerdictFavorSeller, nil
	}
	if uc.policy.TieBreak == TieBreakReject {
		return domain.VerdictNone, fmt.Errorf("%d to %d: %w", d.VotesForBuyer, d.VotesForSeller, domain.ErrTiedVote)
	}
	return domain.VerdictRefund, nil
}
