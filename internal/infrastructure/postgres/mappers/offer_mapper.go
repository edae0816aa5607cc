package mappers

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
)

func ToDomainOffer(model *models.OfferModel) (*domain.Offer, error) {
	var p addressParser
	offer := &domain.Offer{
		ID:                 p.parse("id", model.ID),
		Seller:             p.parse("seller", model.Seller),
		Buyer:              p.parsePtr("buyer", model.Buyer),
		Amount:             model.Amount,
		FiatAmount:         model.FiatAmount,
		FiatCurrency:       model.FiatCurrency,
		PaymentMethod:      model.PaymentMethod,
		Status:             domain.OfferStatus(model.Status),
		SecurityBondBuyer:  model.SecurityBondBuyer,
		SecurityBondSeller: model.SecurityBondSeller,
		DisputeID:          p.parsePtr("dispute_id", model.DisputeID),
		Nonce:              model.Nonce,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
	return offer, p.err
}

func ToGORMOffer(offer *domain.Offer) *models.OfferModel {
	return &models.OfferModel{
		ID:                 offer.ID.String(),
		Seller:             offer.Seller.String(),
		Buyer:              addressPtr(offer.Buyer),
		Amount:             offer.Amount,
		FiatAmount:         offer.FiatAmount,
		FiatCurrency:       offer.FiatCurrency,
		PaymentMethod:      offer.PaymentMethod,
		Status:             string(offer.Status),
		SecurityBondBuyer:  offer.SecurityBondBuyer,
		SecurityBondSeller: offer.SecurityBondSeller,
		DisputeID:          addressPtr(offer.DisputeID),
		Nonce:              offer.Nonce,
		CreatedAt:          offer.CreatedAt,
		UpdatedAt:          offer.UpdatedAt,
	}
}

func ToDomainEscrow(model *models.EscrowModel) (*domain.EscrowAccount, error) {
	var p addressParser
	escrow := &domain.EscrowAccount{
		ID:        p.parse("id", model.ID),
		Offer:     p.parse("offer_id", model.OfferID),
		CreatedAt: model.CreatedAt,
		ClosedAt:  model.ClosedAt,
	}
	return escrow, p.err
}

func ToGORMEscrow(escrow *domain.EscrowAccount) *models.EscrowModel {
	return &models.EscrowModel{
		ID:        escrow.ID.String(),
		OfferID:   escrow.Offer.String(),
		CreatedAt: escrow.CreatedAt,
		ClosedAt:  escrow.ClosedAt,
	}
}
