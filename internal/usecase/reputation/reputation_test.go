package reputation_test

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/exchangetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var user = exchangetest.User(1)

func TestCreateReputation_Idempotent(t *testing.T) {
	h := exchangetest.New(t)
	ctx := context.Background()

	_, err := h.Reputation.GetReputation(ctx, user)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	rep, err := h.Reputation.CreateReputation(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, uint16(domain.InitialRating), rep.Rating)
	assert.Equal(t, domain.ReputationAddress(user), rep.ID)

	h.Clock.Advance(1)
	again, err := h.Reputation.CreateReputation(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, rep.LastUpdated, again.LastUpdated)
}

func TestUpdateReputation(t *testing.T) {
	h := exchangetest.New(t)
	h.InitAdmin(t)
	ctx := context.Background()

	_, err := h.Reputation.UpdateReputation(ctx, user, user, domain.OutcomeTradeCompleted)
	require.ErrorIs(t, err, domain.ErrAdminRequired)

	_, err = h.Reputation.UpdateReputation(ctx, h.Authority, user, domain.Outcome("PROMOTED"))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	rep, err := h.Reputation.UpdateReputation(ctx, h.Authority, user, domain.OutcomeDisputeLost)
	require.NoError(t, err)
	assert.Equal(t, uint16(75), rep.Rating)
	assert.Equal(t, uint32(1), rep.DisputesLost)

	stored, err := h.Reputation.GetReputation(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, rep, stored)
	assert.Equal(t, []domain.EventType{domain.EventAdminUpdated, domain.EventReputationUpdated}, h.Events.Types())
}

func TestTradeCompletion_UpdatesBothParties(t *testing.T) {
	h := exchangetest.New(t)
	ctx := context.Background()
	seller, buyer := exchangetest.User(1), exchangetest.User(2)

	o := h.PaidOffer(t, seller, buyer, 1_000, 0)
	_, err := h.Offers.ReleaseSol(ctx, seller, o.ID)
	require.NoError(t, err)

	for _, party := range []domain.Address{seller, buyer} {
		rep, err := h.Reputation.GetReputation(ctx, party)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), rep.SuccessfulTrades)
		assert.Equal(t, uint16(110), rep.Rating)
	}
}
