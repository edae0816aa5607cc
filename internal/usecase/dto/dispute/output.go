package disputedto

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/pagination"
)

type ExecuteVerdictOutput struct {
	Dispute      *domain.Dispute
	Offer        *domain.Offer
	Forced       bool
	BuyerPayout  uint64
	SellerPayout uint64
}

type ListDisputesOutput struct {
	Disputes   []*domain.Dispute
	Pagination pagination.Pagination
}
