package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(n byte) Address {
	var a Address
	a[31] = n
	return a
}

func TestValidateSignerSet(t *testing.T) {
	require.NoError(t, ValidateSignerSet(addr(1), []Address{addr(1), addr(2)}, 2))

	require.ErrorIs(t, ValidateSignerSet(addr(1), nil, 1), ErrInvalidAmount)
	require.ErrorIs(t, ValidateSignerSet(addr(1), []Address{addr(1)}, 0), ErrInvalidAmount)
	require.ErrorIs(t, ValidateSignerSet(addr(1), []Address{addr(1)}, 2), ErrInvalidAmount)
	require.ErrorIs(t, ValidateSignerSet(addr(1), []Address{addr(1), addr(1)}, 1), ErrInvalidAmount)
	require.ErrorIs(t, ValidateSignerSet(addr(1), []Address{addr(1), ZeroAddress}, 1), ErrUnauthorized)
	require.ErrorIs(t, ValidateSignerSet(addr(9), []Address{addr(1)}, 1), ErrUnauthorized)
}

func TestAdminQuorum(t *testing.T) {
	a := &Admin{Authority: addr(1), Signers: []Address{addr(1), addr(2), addr(3)}, Threshold: 2}

	assert.False(t, a.HasQuorum([]Address{addr(1)}))
	assert.False(t, a.HasQuorum([]Address{addr(1), addr(1)}), "repeated approver counts once")
	assert.False(t, a.HasQuorum([]Address{addr(1), addr(4)}), "outsider does not count")
	assert.True(t, a.HasQuorum([]Address{addr(3), addr(1)}))
}

func TestUpdateApprovalMessage_BindsNonce(t *testing.T) {
	signers := []Address{addr(1), addr(2)}
	m0 := UpdateApprovalMessage(0, addr(1), signers, 2)
	m1 := UpdateApprovalMessage(1, addr(1), signers, 2)
	assert.NotEqual(t, m0, m1)
	assert.Contains(t, string(m0), addr(2).String())
}

func TestRewardTokenReserveAndSettle(t *testing.T) {
	token := &RewardToken{MaxSupply: 100}
	require.NoError(t, token.Reserve(60))
	require.ErrorIs(t, token.Reserve(41), ErrInsufficientFunds)
	assert.Equal(t, uint64(60), token.TotalOutstanding)

	require.NoError(t, token.Settle(60))
	assert.Equal(t, uint64(60), token.TotalSupply)
	assert.Zero(t, token.TotalOutstanding)

	require.NoError(t, token.Reserve(40))
	require.ErrorIs(t, token.Reserve(1), ErrInsufficientFunds)
	require.ErrorIs(t, token.Settle(41), ErrMathOverflow)
}
