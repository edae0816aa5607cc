package dispute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/rewards"
)

// CastVote records the juror's single vote. The vote record lives at an
// address derived from (dispute, juror); creating it twice fails, so the
// tally moves at most once per juror.
func (uc *DefaultDisputeUsecase) CastVote(ctx context.Context, input *disputedto.CastVoteInput) (*domain.Vote, error) {
	if !input.Choice.Valid() {
		return nil, fmt.Errorf("vote choice %q: %w", input.Choice, domain.ErrInvalidAmount)
	}

	var (
		vote    *domain.Vote
		accrued uint64
	)
	err := uc.exec.Execute(ctx, "cast_vote", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		d, err := tx.GetDispute(input.Dispute)
		if err != nil {
			return err
		}
		if err := checkVotingWindow(d, now); err != nil {
			return err
		}
		if !d.IsJuror(input.Juror) {
			return domain.ErrNotAJuror
		}

		vote = &domain.Vote{
			ID:      domain.VoteAddress(d.ID, input.Juror),
			Dispute: d.ID,
			Juror:   input.Juror,
			Choice:  input.Choice,
			CastAt:  now,
		}
		if err := tx.CreateVote(vote); err != nil {
			if errors.Is(err, domain.ErrAccountAlreadyExists) {
				return domain.ErrAlreadyVoted
			}
			return err
		}
		if input.Choice == domain.VoteFavorBuyer {
			d.VotesForBuyer, err = domain.CheckedAdd32(d.VotesForBuyer, 1)
		} else {
			d.VotesForSeller, err = domain.CheckedAdd32(d.VotesForSeller, 1)
		}
		if err != nil {
			return err
		}
		d.Status = domain.DisputeVoting
		if err := tx.SaveDispute(d); err != nil {
			return err
		}

		if _, err := reputation.Record(tx, out, input.Juror, domain.OutcomeJurorVoted, now); err != nil {
			return err
		}
		if accrued, err = rewards.AccrueVote(tx, out, input.Juror, now); err != nil {
			return err
		}
		out.Add(domain.EventVoteCast, d.Offer, domain.VoteCastEvent{
			Dispute:        d.ID,
			Juror:          input.Juror,
			Choice:         input.Choice,
			VotesForBuyer:  d.VotesForBuyer,
			VotesForSeller: d.VotesForSeller,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordVote(string(vote.Choice))
		if accrued > 0 {
			uc.exec.Metrics.RecordRewardsAccrued(rewards.ReasonVote, accrued)
		}
	}
	return vote, nil
}

// checkVotingWindow opens voting lazily once the evidence window closes.
func checkVotingWindow(d *domain.Dispute, now time.Time) error {
	switch d.Status {
	case domain.DisputeJurorsAssigned, domain.DisputeEvidenceSubmission, domain.DisputeVoting:
	default:
		return fmt.Errorf("vote in %s: %w", d.Status, domain.ErrInvalidDisputeStatus)
	}
	if now.Before(d.EvidenceDeadline) {
		return fmt.Errorf("voting opens at %s: %w", d.EvidenceDeadline.Format(time.RFC3339), domain.ErrInvalidDisputeStatus)
	}
	if !now.Before(d.VotingDeadline) {
		return fmt.Errorf("voting closed at %s: %w", d.VotingDeadline.Format(time.RFC3339), domain.ErrDisputeExpired)
	}
	return nil
}
