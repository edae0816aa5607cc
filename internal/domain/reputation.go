package domain

import "time"

type Outcome string

const (
	OutcomeTradeCompleted Outcome = "TRADE_COMPLETED"
	OutcomeDisputeWon     Outcome = "DISPUTE_WON"
	OutcomeDisputeLost    Outcome = "DISPUTE_LOST"
	OutcomeDisputeNeutral Outcome = "DISPUTE_NEUTRAL"
	OutcomeJurorVoted     Outcome = "JUROR_VOTED"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeTradeCompleted, OutcomeDisputeWon, OutcomeDisputeLost, OutcomeDisputeNeutral, OutcomeJurorVoted:
		return true
	}
	return false
}

type Reputation struct {
	ID               Address
	User             Address
	SuccessfulTrades uint32
	DisputedTrades   uint32
	DisputesWon      uint32
	DisputesLost     uint32
	JurorVotes       uint32
	Rating           uint16
	LastUpdated      time.Time
}

func NewReputation(user Address, now time.Time) *Reputation {
	return &Reputation{
		ID:          ReputationAddress(user),
		User:        user,
		Rating:      InitialRating,
		LastUpdated: now,
	}
}

// Apply records outcome. Counters fail with ErrMathOverflow and leave r
// untouched; the rating saturates at its bounds.
func (r *Reputation) Apply(outcome Outcome, now time.Time) error {
	next := *r
	var err error
	switch outcome {
	case OutcomeTradeCompleted:
		if next.SuccessfulTrades, err = CheckedAdd32(next.SuccessfulTrades, 1); err != nil {
			return err
		}
		next.Rating = ClampRating(next.Rating, TradeRatingBonus)
	case OutcomeDisputeWon:
		if next.DisputedTrades, err = CheckedAdd32(next.DisputedTrades, 1); err != nil {
			return err
		}
		if next.DisputesWon, err = CheckedAdd32(next.DisputesWon, 1); err != nil {
			return err
		}
		next.Rating = ClampRating(next.Rating, DisputeWonBonus)
	case OutcomeDisputeLost:
		if next.DisputedTrades, err = CheckedAdd32(next.DisputedTrades, 1); err != nil {
			return err
		}
		if next.DisputesLost, err = CheckedAdd32(next.DisputesLost, 1); err != nil {
			return err
		}
		next.Rating = ClampRating(next.Rating, -DisputeLostPenalty)
	case OutcomeDisputeNeutral:
		if next.DisputedTrades, err = CheckedAdd32(next.DisputedTrades, 1); err != nil {
			return err
		}
	case OutcomeJurorVoted:
		if next.JurorVotes, err = CheckedAdd32(next.JurorVotes, 1); err != nil {
			return err
		}
		next.Rating = ClampRating(next.Rating, JurorRatingBonus)
	default:
		return ErrInvalidAmount
	}
	next.LastUpdated = now
	*r = next
	return nil
}
