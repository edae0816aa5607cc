package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddress_LengthPrefixed(t *testing.T) {
	assert.NotEqual(t, DeriveAddress([]byte("ab"), []byte("c")), DeriveAddress([]byte("a"), []byte("bc")))
	assert.Equal(t, DeriveAddress([]byte("x")), DeriveAddress([]byte("x")))
}

func TestDerivedAddressesAreDistinct(t *testing.T) {
	var user Address
	user[0] = 1
	offer := OfferAddress(user, []byte("nonce"))

	seen := map[Address]string{}
	for name, a := range map[string]Address{
		"admin":        AdminAddress(),
		"offer":        offer,
		"escrow":       EscrowAddress(offer),
		"dispute":      DisputeAddress(offer),
		"vote":         VoteAddress(DisputeAddress(offer), user),
		"reputation":   ReputationAddress(user),
		"reward_token": RewardTokenAddress(),
		"user_rewards": UserRewardsAddress(user),
	} {
		prev, dup := seen[a]
		require.False(t, dup, "%s collides with %s", name, prev)
		seen[a] = name
	}
	assert.NotEqual(t, offer, OfferAddress(user, []byte("other")))
}

func TestParseAddress(t *testing.T) {
	a := DeriveAddress([]byte("parse"))
	parsed, err := ParseAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = ParseAddress("zz")
	require.Error(t, err)
	_, err = ParseAddress("abcd")
	require.Error(t, err)

	var b Address
	require.NoError(t, b.UnmarshalText([]byte(a.String())))
	assert.Equal(t, a, b)
	assert.True(t, ZeroAddress.IsZero())
	assert.False(t, a.IsZero())
}
