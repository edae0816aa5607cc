package background_test

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-p2p-exchange/internal/app/background"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/exchangetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceResolveExpired(t *testing.T) {
	h := exchangetest.New(t)
	ctx := context.Background()
	h.InitAdmin(t)
	seller, buyer := exchangetest.User(1), exchangetest.User(2)
	o := h.PaidOffer(t, seller, buyer, 1_000_000, 5_000)
	d, err := h.Disputes.OpenDispute(ctx, &disputedto.OpenDisputeInput{
		Initiator: buyer,
		Offer:     o.ID,
		Reason:    "seller never released",
	})
	require.NoError(t, err)

	tasks := background.NewBackgroundTasks(h.Disputes, h.Clock, 0, nil)

	n, err := tasks.ForceResolveExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	h.Clock.Set(d.ForceDeadline())
	n, err = tasks.ForceResolveExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := h.Disputes.GetDispute(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisputeResolved, got.Status)
	assert.Equal(t, domain.VerdictRefund, got.Verdict)
	assert.Equal(t, uint64(1_000_000), h.Balance(t, domain.AssetBase, seller))
	assert.Equal(t, uint64(5_000), h.Balance(t, domain.AssetBase, buyer))

	n, err = tasks.ForceResolveExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
