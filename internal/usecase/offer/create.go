package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	offerdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	"github.com/google/uuid"
)

// CreateOffer locks amount plus the optional seller bond in a new escrow.
func (uc *DefaultOfferUsecase) CreateOffer(ctx context.Context, input *offerdto.CreateOfferInput) (*domain.Offer, error) {
	if input.Amount == 0 || input.FiatAmount == 0 {
		return nil, fmt.Errorf("amount and fiat amount must be positive: %w", domain.ErrInvalidAmount)
	}
	currency, err := domain.NormalizeCurrency(input.FiatCurrency)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := domain.NormalizeText("payment method", input.PaymentMethod, domain.MaxPaymentMethodLen)
	if err != nil {
		return nil, err
	}
	nonce := input.Nonce
	if len(nonce) == 0 {
		id := uuid.New()
		nonce = id[:]
	}

	var offer *domain.Offer
	err = uc.exec.Execute(ctx, "create_offer", func(tx domain.Tx, now time.Time, out *guard.Outbox) error {
		if err := uc.limiter.Allow(tx, input.Seller, guard.ActionOfferCreate, now); err != nil {
			return err
		}
		deposit, err := domain.CheckedAdd(input.Amount, input.SellerBond)
		if err != nil {
			return err
		}
		offer = &domain.Offer{
			ID:                 domain.OfferAddress(input.Seller, nonce),
			Seller:             input.Seller,
			Amount:             input.Amount,
			FiatAmount:         input.FiatAmount,
			FiatCurrency:       currency,
			PaymentMethod:      paymentMethod,
			Status:             domain.StatusCreated,
			SecurityBondSeller: input.SellerBond,
			Nonce:              nonce,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.CreateOffer(offer); err != nil {
			return err
		}
		escrow := &domain.EscrowAccount{
			ID:        domain.EscrowAddress(offer.ID),
			Offer:     offer.ID,
			CreatedAt: now,
		}
		if err := tx.CreateEscrow(escrow); err != nil {
			return err
		}
		if err := tx.Transfer(domain.AssetBase, input.Seller, escrow.ID, deposit); err != nil {
			return err
		}
		out.Add(domain.EventOfferCreated, offer.ID, offerEvent(offer))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.exec.Metrics != nil {
		uc.exec.Metrics.RecordOfferCreated(offer.FiatCurrency, offer.Amount)
	}
	uc.exec.Logger.Info("offer created",
		"offer", offer.ID.String(),
		"seller", offer.Seller.String(),
		"amount", offer.Amount,
		"currency", offer.FiatCurrency,
	)
	return offer, nil
}
