package offerdto

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/pagination"
)

type EscrowOutput struct {
	Escrow  domain.EscrowAccount
	Balance uint64
}

type ListOffersOutput struct {
	Offers     []*domain.Offer
	Pagination pagination.Pagination
}
