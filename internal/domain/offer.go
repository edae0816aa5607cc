package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	StatusCreated       OfferStatus = "CREATED"
	StatusListed        OfferStatus = "LISTED"
	StatusAccepted      OfferStatus = "ACCEPTED"
	StatusFiatSent      OfferStatus = "FIAT_SENT"
	StatusSolReleased   OfferStatus = "SOL_RELEASED"
	StatusDisputeOpened OfferStatus = "DISPUTE_OPENED"
	StatusCompleted     OfferStatus = "COMPLETED"
	StatusCancelled     OfferStatus = "CANCELLED"
)

// IsTerminal reports whether the offer's escrow has been paid out.
func (s OfferStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Offer struct {
	ID                 Address
	Seller             Address
	Buyer              *Address
	Amount             uint64
	FiatAmount         uint64
	FiatCurrency       string
	PaymentMethod      string
	Status             OfferStatus
	SecurityBondBuyer  uint64
	SecurityBondSeller uint64
	DisputeID          *Address
	Nonce              []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EscrowOwed is the exact custody an open offer's escrow must hold.
func (o *Offer) EscrowOwed() (uint64, error) {
	return CheckedSum(o.Amount, o.SecurityBondBuyer, o.SecurityBondSeller)
}

func (o *Offer) IsBuyer(a Address) bool {
	return o.Buyer != nil && *o.Buyer == a
}

func (o *Offer) IsParty(a Address) bool {
	return o.Seller == a || o.IsBuyer(a)
}

// UnitPrice is the fiat price of one base unit.
func (o *Offer) UnitPrice() decimal.Decimal {
	if o.Amount == 0 {
		return decimal.Zero
	}
	fiat := decimal.NewFromBigInt(new(big.Int).SetUint64(o.FiatAmount), 0)
	base := decimal.NewFromBigInt(new(big.Int).SetUint64(o.Amount), 0)
	return fiat.Div(base)
}

func (o *Offer) Clone() *Offer {
	c := *o
	if o.Buyer != nil {
		b := *o.Buyer
		c.Buyer = &b
	}
	if o.DisputeID != nil {
		d := *o.DisputeID
		c.DisputeID = &d
	}
	c.Nonce = append([]byte(nil), o.Nonce...)
	return &c
}

type OfferFilter struct {
	Status *OfferStatus
	Seller *Address
	Buyer  *Address
	Page   int
	Limit  int
}

// EscrowAccount records custody for one offer. The balance itself lives in
// the Ledger under the escrow address.
type EscrowAccount struct {
	ID        Address
	Offer     Address
	CreatedAt time.Time
	ClosedAt  *time.Time
}

func (e *EscrowAccount) Clone() *EscrowAccount {
	c := *e
	if e.ClosedAt != nil {
		t := *e.ClosedAt
		c.ClosedAt = &t
	}
	return &c
}
