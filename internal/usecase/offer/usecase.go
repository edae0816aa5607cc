package offer

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	offerdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

type OfferUsecase interface {
	CreateOffer(ctx context.Context, input *offerdto.CreateOfferInput) (*domain.Offer, error)
	ListOffer(ctx context.Context, seller, offerID domain.Address) (*domain.Offer, error)
	AcceptOffer(ctx context.Context, input *offerdto.AcceptOfferInput) (*domain.Offer, error)
	ConfirmFiatPayment(ctx context.Context, buyer, offerID domain.Address) (*domain.Offer, error)
	ReleaseSol(ctx context.Context, seller, offerID domain.Address) (*domain.Offer, error)
	CancelOffer(ctx context.Context, caller, offerID domain.Address) (*domain.Offer, error)

	GetOffer(ctx context.Context, offerID domain.Address) (*domain.Offer, error)
	GetEscrow(ctx context.Context, offerID domain.Address) (*offerdto.EscrowOutput, error)
	ListOffers(ctx context.Context, input *offerdto.ListOffersInput) (*offerdto.ListOffersOutput, error)
}

// Policy holds the configurable cancellation rules.
type Policy struct {
	// BuyerMayCancel lets the buyer cancel an accepted offer before
	// confirming the fiat payment.
	BuyerMayCancel bool
	// ForfeitBondOnCancel pays the cancelling party's bond to the
	// counterparty when an accepted offer is cancelled.
	ForfeitBondOnCancel bool
}

func DefaultPolicy() Policy {
	return Policy{BuyerMayCancel: true}
}

type DefaultOfferUsecase struct {
	exec    *guard.Executor
	limiter *guard.Limiter
	policy  Policy
}

func NewDefaultOfferUsecase(exec *guard.Executor, limiter *guard.Limiter, policy Policy) *DefaultOfferUsecase {
	return &DefaultOfferUsecase{
		exec:    exec,
		limiter: limiter,
		policy:  policy,
	}
}
