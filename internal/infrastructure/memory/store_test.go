package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(b byte) domain.Address {
	var a domain.Address
	a[0] = b
	return a
}

func TestAtomically_RollsBackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	alice, bob := addr(1), addr(2)

	require.NoError(t, s.Atomically(ctx, func(tx domain.Tx) error {
		return tx.Mint(domain.AssetBase, alice, 100)
	}))

	boom := errors.New("boom")
	err := s.Atomically(ctx, func(tx domain.Tx) error {
		require.NoError(t, tx.Transfer(domain.AssetBase, alice, bob, 60))
		bal, err := tx.Balance(domain.AssetBase, bob)
		require.NoError(t, err)
		assert.Equal(t, uint64(60), bal, "writes are visible inside the transaction")
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(tx domain.Tx) error {
		a, _ := tx.Balance(domain.AssetBase, alice)
		b, _ := tx.Balance(domain.AssetBase, bob)
		assert.Equal(t, uint64(100), a)
		assert.Equal(t, uint64(0), b)
		return nil
	}))
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	s := NewStore()
	err := s.Atomically(context.Background(), func(tx domain.Tx) error {
		require.NoError(t, tx.Mint(domain.AssetBase, addr(1), 5))
		return tx.Transfer(domain.AssetBase, addr(1), addr(2), 6)
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestCreateVote_NeverOverwrites(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	vote := &domain.Vote{ID: domain.VoteAddress(addr(9), addr(3)), Juror: addr(3), Choice: domain.VoteFavorBuyer}

	require.NoError(t, s.Atomically(ctx, func(tx domain.Tx) error { return tx.CreateVote(vote) }))

	second := *vote
	second.Choice = domain.VoteFavorSeller
	err := s.Atomically(ctx, func(tx domain.Tx) error { return tx.CreateVote(&second) })
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	require.NoError(t, s.View(ctx, func(tx domain.Tx) error {
		got, err := tx.GetVote(vote.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.VoteFavorBuyer, got.Choice)
		return nil
	}))
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	offer := &domain.Offer{ID: addr(7), Seller: addr(1), Amount: 10, Status: domain.StatusCreated}
	require.NoError(t, s.Atomically(ctx, func(tx domain.Tx) error { return tx.CreateOffer(offer) }))

	offer.Status = domain.StatusCancelled
	require.NoError(t, s.View(ctx, func(tx domain.Tx) error {
		got, err := tx.GetOffer(addr(7))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCreated, got.Status)
		got.Status = domain.StatusListed
		return nil
	}))
	require.NoError(t, s.View(ctx, func(tx domain.Tx) error {
		got, _ := tx.GetOffer(addr(7))
		assert.Equal(t, domain.StatusCreated, got.Status)
		return nil
	}))
}

func TestListOffers_FilterAndPaginate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Atomically(ctx, func(tx domain.Tx) error {
		for i := 0; i < 5; i++ {
			status := domain.StatusListed
			if i%2 == 1 {
				status = domain.StatusCreated
			}
			o := &domain.Offer{ID: addr(byte(10 + i)), Seller: addr(1), Status: status, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
			if err := tx.CreateOffer(o); err != nil {
				return err
			}
		}
		return nil
	}))

	listed := domain.StatusListed
	require.NoError(t, s.View(ctx, func(tx domain.Tx) error {
		offers, total, err := tx.ListOffers(domain.OfferFilter{Status: &listed, Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, offers, 2)
		assert.Equal(t, addr(14), offers[0].ID, "newest first")
		assert.Equal(t, addr(12), offers[1].ID)

		offers, _, err = tx.ListOffers(domain.OfferFilter{Status: &listed, Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, addr(10), offers[0].ID)
		return nil
	}))
}

func TestGetRateLimit_UnknownKeyIsEmpty(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.View(context.Background(), func(tx domain.Tx) error {
		limit, err := tx.GetRateLimit("offer_create:x")
		require.NoError(t, err)
		assert.Equal(t, "offer_create:x", limit.Key)
		assert.Empty(t, limit.Events)
		return nil
	}))
}
