package offerdto

import "github.com/LavaJover/shvark-p2p-exchange/internal/domain"

type CreateOfferInput struct {
	Seller        domain.Address
	Amount        uint64
	FiatAmount    uint64
	FiatCurrency  string
	PaymentMethod string
	SellerBond    uint64
	// Nonce separates offers of one seller. Generated when empty.
	Nonce []byte
}

type AcceptOfferInput struct {
	Buyer domain.Address
	Offer domain.Address
	Bond  uint64
}

type ListOffersInput struct {
	Status *domain.OfferStatus
	Seller *domain.Address
	Buyer  *domain.Address
	Page   int32
	Limit  int32
}
