package offer

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	offerdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/pagination"
)

func (uc *DefaultOfferUsecase) GetOffer(ctx context.Context, offerID domain.Address) (*domain.Offer, error) {
	var offer *domain.Offer
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := tx.GetOffer(offerID)
		offer = found
		return err
	})
	return offer, err
}

// GetEscrow returns the escrow record of an offer with its live ledger
// balance.
func (uc *DefaultOfferUsecase) GetEscrow(ctx context.Context, offerID domain.Address) (*offerdto.EscrowOutput, error) {
	var output offerdto.EscrowOutput
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		escrow, err := tx.GetEscrow(domain.EscrowAddress(offerID))
		if err != nil {
			return err
		}
		balance, err := tx.Balance(domain.AssetBase, escrow.ID)
		if err != nil {
			return err
		}
		output = offerdto.EscrowOutput{Escrow: *escrow, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}

func (uc *DefaultOfferUsecase) ListOffers(ctx context.Context, input *offerdto.ListOffersInput) (*offerdto.ListOffersOutput, error) {
	page, limit := pagination.Normalize(input.Page, input.Limit)
	filter := domain.OfferFilter{
		Status: input.Status,
		Seller: input.Seller,
		Buyer:  input.Buyer,
		Page:   int(page),
		Limit:  int(limit),
	}
	var (
		offers []*domain.Offer
		total  int64
	)
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		var err error
		offers, total, err = tx.ListOffers(filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &offerdto.ListOffersOutput{
		Offers:     offers,
		Pagination: pagination.New(page, limit, total),
	}, nil
}
