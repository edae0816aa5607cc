package repository

import (
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

func (tx *Tx) GetOffer(id domain.Address) (*domain.Offer, error) {
	var model models.OfferModel
	if err := tx.take(&model, "offer", "id", id.String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainOffer(&model)
}

func (tx *Tx) CreateOffer(offer *domain.Offer) error {
	return tx.insert(mappers.ToGORMOffer(offer), "offer", offer.ID.String())
}

func (tx *Tx) SaveOffer(offer *domain.Offer) error {
	return tx.save(mappers.ToGORMOffer(offer), "offer", offer.ID.String())
}

func (tx *Tx) ListOffers(filter domain.OfferFilter) ([]*domain.Offer, int64, error) {
	where := func(db *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		if filter.Seller != nil {
			db = db.Where("seller = ?", filter.Seller.String())
		}
		if filter.Buyer != nil {
			db = db.Where("buyer = ?", filter.Buyer.String())
		}
		return db
	}

	var total int64
	if err := tx.db.Model(&models.OfferModel{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count offers: %w", err)
	}

	var rows []models.OfferModel
	query := tx.db.Model(&models.OfferModel{}).Scopes(where).Order("created_at DESC").Order("id")
	if filter.Limit > 0 {
		query = query.Offset(offset(filter.Page, filter.Limit)).Limit(filter.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list offers: %w", err)
	}

	offers := make([]*domain.Offer, 0, len(rows))
	for i := range rows {
		offer, err := mappers.ToDomainOffer(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		offers = append(offers, offer)
	}
	return offers, total, nil
}

func (tx *Tx) GetEscrow(id domain.Address) (*domain.EscrowAccount, error) {
	var model models.EscrowModel
	if err := tx.take(&model, "escrow", "id", id.String()); err != nil {
		return nil, err
	}
	return mappers.ToDomainEscrow(&model)
}

func (tx *Tx) CreateEscrow(escrow *domain.EscrowAccount) error {
	return tx.insert(mappers.ToGORMEscrow(escrow), "escrow", escrow.ID.String())
}

func (tx *Tx) SaveEscrow(escrow *domain.EscrowAccount) error {
	return tx.save(mappers.ToGORMEscrow(escrow), "escrow", escrow.ID.String())
}
