package dispute

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/pagination"
)

func (uc *DefaultDisputeUsecase) GetDispute(ctx context.Context, disputeID domain.Address) (*domain.Dispute, error) {
	var dispute *domain.Dispute
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := tx.GetDispute(disputeID)
		dispute = found
		return err
	})
	return dispute, err
}

func (uc *DefaultDisputeUsecase) GetVote(ctx context.Context, disputeID, juror domain.Address) (*domain.Vote, error) {
	var vote *domain.Vote
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		found, err := tx.GetVote(domain.VoteAddress(disputeID, juror))
		vote = found
		return err
	})
	return vote, err
}

func (uc *DefaultDisputeUsecase) ListDisputes(ctx context.Context, input *disputedto.ListDisputesInput) (*disputedto.ListDisputesOutput, error) {
	page, limit := pagination.Normalize(input.Page, input.Limit)
	var (
		disputes []*domain.Dispute
		total    int64
	)
	err := uc.exec.View(ctx, func(tx domain.Tx) error {
		var err error
		disputes, total, err = tx.ListDisputes(domain.DisputeFilter{
			Status:       input.Status,
			Unresolved:   input.Unresolved,
			OpenedBefore: input.OpenedBefore,
			Page:         int(page),
			Limit:        int(limit),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &disputedto.ListDisputesOutput{
		Disputes:   disputes,
		Pagination: pagination.New(page, limit, total),
	}, nil
}
