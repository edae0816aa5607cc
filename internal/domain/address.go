package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Address identifies a user key or a derived account record.
type Address [32]byte

// ZeroAddress is never a valid caller or record address.
var ZeroAddress Address

// Seed prefixes for derived account addresses.
const (
	SeedAdmin       = "admin"
	SeedOffer       = "offer"
	SeedEscrow      = "escrow"
	SeedDispute     = "dispute"
	SeedVote        = "vote"
	SeedReputation  = "reputation"
	SeedRewardToken = "reward_token"
	SeedUserRewards = "user_rewards"
)

// deriveKey is the BLAKE3 key used for every derived address. Changing it
// moves every record in every store.
var deriveKey = [32]byte{
	's', 'h', 'v', 'a', 'r', 'k', '.', 'p', '2', 'p', '.',
	'a', 'd', 'd', 'r', 'e', 's', 's', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// DeriveAddress computes the deterministic address for a seed tuple. Each
// seed is length-prefixed so ("ab","c") and ("a","bc") never collide.
func DeriveAddress(seeds ...[]byte) Address {
	h, err := blake3.NewKeyed(deriveKey[:])
	if err != nil {
		// Only fails on a key of the wrong size.
		panic(err)
	}
	var prefix [4]byte
	for _, s := range seeds {
		binary.BigEndian.PutUint32(prefix[:], uint32(len(s)))
		_, _ = h.Write(prefix[:])
		_, _ = h.Write(s)
	}
	var out Address
	copy(out[:], h.Sum(nil))
	return out
}

func AdminAddress() Address {
	return DeriveAddress([]byte(SeedAdmin))
}

func OfferAddress(seller Address, nonce []byte) Address {
	return DeriveAddress([]byte(SeedOffer), seller[:], nonce)
}

func EscrowAddress(offer Address) Address {
	return DeriveAddress([]byte(SeedEscrow), offer[:])
}

// DisputeAddress is derived from the offer alone, so an offer can carry at
// most one dispute.
func DisputeAddress(offer Address) Address {
	return DeriveAddress([]byte(SeedDispute), offer[:])
}

// VoteAddress is derived from the (dispute, juror) pair. A second vote by the
// same juror lands on the same address and fails at creation.
func VoteAddress(dispute, juror Address) Address {
	return DeriveAddress([]byte(SeedVote), dispute[:], juror[:])
}

func ReputationAddress(user Address) Address {
	return DeriveAddress([]byte(SeedReputation), user[:])
}

func RewardTokenAddress() Address {
	return DeriveAddress([]byte(SeedRewardToken))
}

func UserRewardsAddress(user Address) Address {
	return DeriveAddress([]byte(SeedUserRewards), user[:])
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// ParseAddress decodes the 64-character hex form produced by String.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("parse address: %w", err)
	}
	if len(b) != len(a) {
		return a, fmt.Errorf("parse address: want %d bytes, got %d", len(a), len(b))
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
