package admin_test

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	admindto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/exchangetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	root  = exchangetest.User(1)
	alice = exchangetest.User(2)
	bob   = exchangetest.User(3)
	carol = exchangetest.User(4)
)

func TestInitializeAdmin(t *testing.T) {
	h := exchangetest.New(t)
	ctx := context.Background()

	a, err := h.Admin.InitializeAdmin(ctx, &admindto.InitializeAdminInput{Caller: root})
	require.NoError(t, err)
	assert.Equal(t, root, a.Authority)
	assert.Equal(t, []domain.Address{root}, a.Signers)
	assert.Equal(t, 1, a.Threshold)
	assert.Equal(t, domain.AdminAddress(), a.ID)

	_, err = h.Admin.InitializeAdmin(ctx, &admindto.InitializeAdminInput{Caller: alice})
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	stored, err := h.Admin.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, root, stored.Authority)
}

func TestInitializeAdmin_InvalidSignerSet(t *testing.T) {
	h := exchangetest.New(t)
	_, err := h.Admin.InitializeAdmin(context.Background(), &admindto.InitializeAdminInput{
		Caller:    root,
		Signers:   []domain.Address{alice, bob},
		Threshold: 1,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized, "caller must be a signer")

	_, err = h.Admin.GetAdmin(context.Background())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func multisig(t *testing.T) *exchangetest.Harness {
	t.Helper()
	h := exchangetest.New(t)
	_, err := h.Admin.InitializeAdmin(context.Background(), &admindto.InitializeAdminInput{
		Caller:    root,
		Signers:   []domain.Address{root, alice, bob},
		Threshold: 2,
	})
	require.NoError(t, err)
	return h
}

func TestUpdateAdmin(t *testing.T) {
	h := multisig(t)
	ctx := context.Background()
	input := func(nonce uint64, approvers ...domain.Address) *admindto.UpdateAdminInput {
		return &admindto.UpdateAdminInput{
			Nonce:        nonce,
			Approvers:    approvers,
			NewAuthority: carol,
			NewSigners:   []domain.Address{carol, alice},
			NewThreshold: 1,
		}
	}

	_, err := h.Admin.UpdateAdmin(ctx, input(0, root))
	require.ErrorIs(t, err, domain.ErrUnauthorized, "one of two approvals")

	_, err = h.Admin.UpdateAdmin(ctx, input(0, root, carol))
	require.ErrorIs(t, err, domain.ErrUnauthorized, "carol is not a signer yet")

	_, err = h.Admin.UpdateAdmin(ctx, input(1, root, alice))
	require.ErrorIs(t, err, domain.ErrUnauthorized, "future nonce")

	a, err := h.Admin.UpdateAdmin(ctx, input(0, root, alice))
	require.NoError(t, err)
	assert.Equal(t, carol, a.Authority)
	assert.Equal(t, 1, a.Threshold)
	assert.Equal(t, uint64(1), a.Nonce)

	_, err = h.Admin.UpdateAdmin(ctx, input(0, root, alice))
	require.ErrorIs(t, err, domain.ErrUnauthorized, "approvals for a used nonce are stale")

	_, err = h.Reputation.UpdateReputation(ctx, root, alice, domain.OutcomeTradeCompleted)
	require.ErrorIs(t, err, domain.ErrAdminRequired)
	_, err = h.Reputation.UpdateReputation(ctx, carol, alice, domain.OutcomeTradeCompleted)
	require.NoError(t, err)
}

func TestUpdateAdmin_RejectsInvalidNewSet(t *testing.T) {
	h := multisig(t)
	_, err := h.Admin.UpdateAdmin(context.Background(), &admindto.UpdateAdminInput{
		Approvers:    []domain.Address{root, bob},
		NewAuthority: carol,
		NewSigners:   []domain.Address{carol},
		NewThreshold: 2,
	})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	a, err := h.Admin.GetAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), a.Nonce)
}

func TestUpdateAdmin_NotInitialized(t *testing.T) {
	h := exchangetest.New(t)
	_, err := h.Admin.UpdateAdmin(context.Background(), &admindto.UpdateAdminInput{
		Approvers:    []domain.Address{root},
		NewAuthority: root,
		NewSigners:   []domain.Address{root},
		NewThreshold: 1,
	})
	require.ErrorIs(t, err, domain.ErrAdminRequired)
}
