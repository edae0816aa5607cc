package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReputationApply(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	var user Address
	user[0] = 7

	rep := NewReputation(user, start)
	assert.Equal(t, uint16(InitialRating), rep.Rating)

	later := start.Add(time.Minute)
	require.NoError(t, rep.Apply(OutcomeTradeCompleted, later))
	require.NoError(t, rep.Apply(OutcomeDisputeWon, later))
	require.NoError(t, rep.Apply(OutcomeDisputeNeutral, later))
	require.NoError(t, rep.Apply(OutcomeJurorVoted, later))

	assert.Equal(t, uint32(1), rep.SuccessfulTrades)
	assert.Equal(t, uint32(2), rep.DisputedTrades)
	assert.Equal(t, uint32(1), rep.DisputesWon)
	assert.Equal(t, uint32(1), rep.JurorVotes)
	assert.Equal(t, uint16(116), rep.Rating)
	assert.Equal(t, later, rep.LastUpdated)

	for i := 0; i < 10; i++ {
		require.NoError(t, rep.Apply(OutcomeDisputeLost, later))
	}
	assert.Equal(t, uint16(MinRating), rep.Rating)
	assert.Equal(t, uint32(10), rep.DisputesLost)
}

func TestReputationApply_OverflowLeavesRecordUntouched(t *testing.T) {
	rep := &Reputation{DisputedTrades: math.MaxUint32, Rating: 300}
	before := *rep
	require.ErrorIs(t, rep.Apply(OutcomeDisputeWon, time.Now()), ErrMathOverflow)
	assert.Equal(t, before, *rep)

	require.ErrorIs(t, rep.Apply(Outcome("BOGUS"), time.Now()), ErrInvalidAmount)
}
