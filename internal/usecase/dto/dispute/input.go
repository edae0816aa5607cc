package disputedto

import (
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

type OpenDisputeInput struct {
	Initiator domain.Address
	Offer     domain.Address
	Reason    string
}

type AssignJurorsInput struct {
	Admin   domain.Address
	Dispute domain.Address
	Jurors  []domain.Address
}

type CastVoteInput struct {
	Juror   domain.Address
	Dispute domain.Address
	Choice  domain.VoteChoice
}

type ListDisputesInput struct {
	Status       *domain.DisputeStatus
	Unresolved   bool
	OpenedBefore *time.Time
	Page         int32
	Limit        int32
}
