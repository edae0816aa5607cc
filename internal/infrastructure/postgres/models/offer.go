package models

import (
	"time"
)

type OfferModel struct {
	ID                 string    `gorm:"primaryKey;type:char(64)"`
	Seller             string    `gorm:"type:char(64);not null;index:idx_offers_seller"`
	Buyer              *string   `gorm:"type:char(64);index:idx_offers_buyer"`
	Amount             uint64    `gorm:"not null"`
	FiatAmount         uint64    `gorm:"not null"`
	FiatCurrency       string    `gorm:"not null"`
	PaymentMethod      string    `gorm:"not null"`
	Status             string    `gorm:"not null;index:idx_offers_status_created"`
	SecurityBondBuyer  uint64    `gorm:"not null;default:0"`
	SecurityBondSeller uint64    `gorm:"not null;default:0"`
	DisputeID          *string   `gorm:"type:char(64)"`
	Nonce              []byte    `gorm:"type:bytea;not null"`
	CreatedAt          time.Time `gorm:"index:idx_offers_status_created"`
	UpdatedAt          time.Time
}

func (OfferModel) TableName() string {
	return "offers"
}

type EscrowModel struct {
	ID        string `gorm:"primaryKey;type:char(64)"`
	OfferID   string `gorm:"type:char(64);not null;uniqueIndex"`
	CreatedAt time.Time
	ClosedAt  *time.Time
}

func (EscrowModel) TableName() string {
	return "escrows"
}

// LedgerBalanceModel - баланс владельца в одном активе
type LedgerBalanceModel struct {
	Asset  string `gorm:"primaryKey"`
	Owner  string `gorm:"primaryKey;type:char(64)"`
	Amount uint64 `gorm:"not null;default:0"`
}

func (LedgerBalanceModel) TableName() string {
	return "ledger_balances"
}
