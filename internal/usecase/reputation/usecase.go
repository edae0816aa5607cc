package reputation

import (
	"context"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
)

type ReputationUsecase interface {
	CreateReputation(ctx context.Context, user domain.Address) (*domain.Reputation, error)
	UpdateReputation(ctx context.Context, admin, user domain.Address, outcome domain.Outcome) (*domain.Reputation, error)
	GetReputation(ctx context.Context, user domain.Address) (*domain.Reputation, error)
}

type DefaultReputationUsecase struct {
	exec *guard.Executor
}

func NewDefaultReputationUsecase(exec *guard.Executor) *DefaultReputationUsecase {
	return &DefaultReputationUsecase{exec: exec}
}
