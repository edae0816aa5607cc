package dispute

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

type DisputeUsecase interface {
	OpenDispute(ctx context.Context, input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	AssignJurors(ctx context.Context, input *disputedto.AssignJurorsInput) (*domain.Dispute, error)
	SubmitEvidence(ctx context.Context, party, disputeID domain.Address, url string) (*domain.Dispute, error)
	CastVote(ctx context.Context, input *disputedto.CastVoteInput) (*domain.Vote, error)
	FinalizeVerdict(ctx context.Context, executor, disputeID domain.Address) (*domain.Dispute, error)
	ExecuteVerdict(ctx context.Context, executor, disputeID domain.Address) (*disputedto.ExecuteVerdictOutput, error)

	GetDispute(ctx context.Context, disputeID domain.Address) (*domain.Dispute, error)
	GetVote(ctx context.Context, disputeID, juror domain.Address) (*domain.Vote, error)
	ListDisputes(ctx context.Context, input *disputedto.ListDisputesInput) (*disputedto.ListDisputesOutput, error)
}

// TieBreak decides a dispute whose juror votes are tied.
type TieBreak string

const (
	// TieBreakRefund returns every deposit to its depositor.
	TieBreakRefund TieBreak = "refund"
	// TieBreakReject refuses to finalize; the dispute waits for forced
	// resolution.
	TieBreakReject TieBreak = "reject"
)

type Policy struct {
	TieBreak TieBreak
}

func DefaultPolicy() Policy {
	return Policy{TieBreak: TieBreakRefund}
}

type DefaultDisputeUsecase struct {
	exec    *guard.Executor
	limiter *guard.Limiter
	policy  Policy
}

func NewDefaultDisputeUsecase(exec *guard.Executor, limiter *guard.Limiter, policy Policy) *DefaultDisputeUsecase {
	if policy.TieBreak == "" {
		policy.TieBreak = TieBreakRefund
	}
	return &DefaultDisputeUsecase{
		exec:    exec,
		limiter: limiter,
		policy:  policy,
	}
}
