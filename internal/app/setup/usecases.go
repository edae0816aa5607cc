package setup

import (
	"github.com/LavaJover/shvark-p2p-exchange/internal/config"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/rewards"
)

type UseCases struct {
	AdminUsecase      admin.AdminUsecase
	OfferUsecase      offer.OfferUsecase
	DisputeUsecase    dispute.DisputeUsecase
	ReputationUsecase reputation.ReputationUsecase
	RewardsUsecase    rewards.RewardsUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	dispatcher, err := guard.NewDispatcher(deps.Publisher, deps.Logger)
	if err != nil {
		return nil, err
	}
	exec := guard.NewExecutor(deps.Store, deps.Clock, dispatcher, deps.Metrics, deps.Logger)
	limiter := guard.NewLimiter(RateRules(deps.Config.Protocol))

	return &UseCases{
		AdminUsecase:      admin.NewDefaultAdminUsecase(exec),
		OfferUsecase:      offer.NewDefaultOfferUsecase(exec, limiter, OfferPolicy(deps.Config.Protocol)),
		DisputeUsecase:    dispute.NewDefaultDisputeUsecase(exec, limiter, dispute.Policy{TieBreak: dispute.TieBreak(deps.Config.Protocol.TieBreak)}),
		ReputationUsecase: reputation.NewDefaultReputationUsecase(exec),
		RewardsUsecase:    rewards.NewDefaultRewardsUsecase(exec),
	}, nil
}

// RateRules overlays the configured limits on the built-in ones.
func RateRules(p config.Protocol) map[string]guard.Rule {
	rules := guard.DefaultRules()
	for action, rule := range map[string]config.RateRule{
		guard.ActionOfferCreate: p.RateLimits.OfferCreate,
		guard.ActionOfferAccept: p.RateLimits.OfferAccept,
		guard.ActionDisputeOpen: p.RateLimits.DisputeOpen,
	} {
		if !rule.IsZero() {
			rules[action] = guard.Rule{Max: rule.Max, Window: rule.Window}
		}
	}
	return rules
}

func OfferPolicy(p config.Protocol) offer.Policy {
	return offer.Policy{
		BuyerMayCancel:      !p.DisableBuyerCancel,
		ForfeitBondOnCancel: p.ForfeitBondOnCancel,
	}
}
