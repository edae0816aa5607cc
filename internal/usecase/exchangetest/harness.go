// Package exchangetest wires every usecase over the in-memory store for
// tests.
package exchangetest

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dispute"
	admindto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/admin"
	offerdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/rewards"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// Start is the clock value of a fresh harness.
var Start = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type Harness struct {
	Store   *memory.Store
	Clock   *memory.Clock
	Events  *memory.EventRecorder
	Metrics *metrics.ExchangeMetrics
	Exec    *guard.Executor

	Admin      *admin.DefaultAdminUsecase
	Offers     *offer.DefaultOfferUsecase
	Disputes   *dispute.DefaultDisputeUsecase
	Reputation *reputation.DefaultReputationUsecase
	Rewards    *rewards.DefaultRewardsUsecase

	Authority domain.Address
}

type config struct {
	offerPolicy   offer.Policy
	disputePolicy dispute.Policy
	rules         map[string]guard.Rule
}

type Option func(*config)

func WithOfferPolicy(p offer.Policy) Option {
	return func(c *config) { c.offerPolicy = p }
}

func WithDisputePolicy(p dispute.Policy) Option {
	return func(c *config) { c.disputePolicy = p }
}

func WithRules(rules map[string]guard.Rule) Option {
	return func(c *config) { c.rules = rules }
}

func New(t testing.TB, opts ...Option) *Harness {
	t.Helper()
	cfg := config{
		offerPolicy:   offer.DefaultPolicy(),
		disputePolicy: dispute.DefaultPolicy(),
		rules:         guard.DefaultRules(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Harness{
		Store:     memory.NewStore(),
		Clock:     memory.NewClock(Start),
		Events:    memory.NewEventRecorder(),
		Metrics:   metrics.NewExchangeMetrics(prometheus.NewRegistry()),
		Authority: User(200),
	}
	dispatcher, err := guard.NewDispatcher(h.Events, nil)
	require.NoError(t, err)
	h.Exec = guard.NewExecutor(h.Store, h.Clock, dispatcher, h.Metrics, nil)
	limiter := guard.NewLimiter(cfg.rules)

	h.Admin = admin.NewDefaultAdminUsecase(h.Exec)
	h.Offers = offer.NewDefaultOfferUsecase(h.Exec, limiter, cfg.offerPolicy)
	h.Disputes = dispute.NewDefaultDisputeUsecase(h.Exec, limiter, cfg.disputePolicy)
	h.Reputation = reputation.NewDefaultReputationUsecase(h.Exec)
	h.Rewards = rewards.NewDefaultRewardsUsecase(h.Exec)
	return h
}

// User returns a distinct test address.
func User(n byte) domain.Address {
	var a domain.Address
	a[0] = 0xAA
	a[31] = n
	return a
}

func (h *Harness) InitAdmin(t testing.TB) *domain.Admin {
	t.Helper()
	a, err := h.Admin.InitializeAdmin(context.Background(), &admindto.InitializeAdminInput{Caller: h.Authority})
	require.NoError(t, err)
	return a
}

func (h *Harness) Fund(t testing.TB, owner domain.Address, amount uint64) {
	t.Helper()
	require.NoError(t, h.Store.Atomically(context.Background(), func(tx domain.Tx) error {
		return tx.Mint(domain.AssetBase, owner, amount)
	}))
}

func (h *Harness) Balance(t testing.TB, asset domain.Asset, owner domain.Address) uint64 {
	t.Helper()
	var balance uint64
	require.NoError(t, h.Store.View(context.Background(), func(tx domain.Tx) error {
		var err error
		balance, err = tx.Balance(asset, owner)
		return err
	}))
	return balance
}

func (h *Harness) EscrowBalance(t testing.TB, offerID domain.Address) uint64 {
	t.Helper()
	return h.Balance(t, domain.AssetBase, domain.EscrowAddress(offerID))
}

// ListedOffer funds seller, creates an offer of amount and lists it.
func (h *Harness) ListedOffer(t testing.TB, seller domain.Address, amount, sellerBond uint64) *domain.Offer {
	t.Helper()
	ctx := context.Background()
	h.Fund(t, seller, amount+sellerBond)
	o, err := h.Offers.CreateOffer(ctx, &offerdto.CreateOfferInput{
		Seller:        seller,
		Amount:        amount,
		FiatAmount:    50_000,
		FiatCurrency:  "USD",
		PaymentMethod: "Bank transfer",
		SellerBond:    sellerBond,
	})
	require.NoError(t, err)
	o, err = h.Offers.ListOffer(ctx, seller, o.ID)
	require.NoError(t, err)
	return o
}

// PaidOffer drives a listed offer through acceptance and fiat confirmation.
func (h *Harness) PaidOffer(t testing.TB, seller, buyer domain.Address, amount, buyerBond uint64) *domain.Offer {
	t.Helper()
	ctx := context.Background()
	o := h.ListedOffer(t, seller, amount, 0)
	h.Fund(t, buyer, buyerBond)
	_, err := h.Offers.AcceptOffer(ctx, &offerdto.AcceptOfferInput{Buyer: buyer, Offer: o.ID, Bond: buyerBond})
	require.NoError(t, err)
	o, err = h.Offers.ConfirmFiatPayment(ctx, buyer, o.ID)
	require.NoError(t, err)
	return o
}
