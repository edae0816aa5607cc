package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/admin"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dispute"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/rewards"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Admin      admin.AdminUsecase
	Offers     offer.OfferUsecase
	Disputes   dispute.DisputeUsecase
	Reputation reputation.ReputationUsecase
	Rewards    rewards.RewardsUsecase
	// Store backs the ledger routes.
	Store domain.Store

	Gatherer        prometheus.Gatherer
	Logger          *slog.Logger
	SignatureWindow time.Duration
	Now             func() time.Time
	// DevRoutes mounts POST /ledger/deposit.
	DevRoutes bool
}

const replayCacheSize = 1 << 17

// NewRouter serves reads as public GET routes and every instruction as a
// signed POST route.
func NewRouter(deps RouterDeps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.SignatureWindow <= 0 {
		deps.SignatureWindow = 5 * time.Minute
	}
	ew := errorWriter{logger: deps.Logger}
	auth := &middleware.Authenticator{
		Window: deps.SignatureWindow,
		Now:    deps.Now,
		// a timestamp may sit a full window on either side of now
		Replays: middleware.NewReplayCache(replayCacheSize, 2*deps.SignatureWindow),
		OnReject: func(r *http.Request, err error) {
			deps.Logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "reason", err.Error())
		},
	}

	offers := &OfferHandler{uc: deps.Offers, errorWriter: ew}
	disputes := &DisputeHandler{uc: deps.Disputes, errorWriter: ew}
	reps := &ReputationHandler{uc: deps.Reputation, errorWriter: ew}
	rwd := &RewardsHandler{uc: deps.Rewards, errorWriter: ew}
	adm := &AdminHandler{uc: deps.Admin, errorWriter: ew}
	ledger := &LedgerHandler{store: deps.Store, errorWriter: ew}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	// public reads
	r.Get("/admin", adm.GetAdmin)
	r.Get("/offers", offers.ListOffers)
	r.Get("/offers/{offerID}", offers.GetOffer)
	r.Get("/offers/{offerID}/escrow", offers.GetEscrow)
	r.Get("/disputes", disputes.ListDisputes)
	r.Get("/disputes/{disputeID}", disputes.GetDispute)
	r.Get("/disputes/{disputeID}/votes/{juror}", disputes.GetVote)
	r.Get("/reputation/{user}", reps.GetReputation)
	r.Get("/rewards/token", rwd.GetRewardToken)
	r.Get("/rewards/{user}", rwd.GetUserRewards)
	r.Get("/ledger/{asset}/{owner}", ledger.Balance)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Post("/admin/init", adm.InitializeAdmin)
		r.Post("/admin/update", adm.UpdateAdmin)

		r.Post("/offers", offers.CreateOffer)
		r.Post("/offers/{offerID}/list", offers.ListOffer)
		r.Post("/offers/{offerID}/accept", offers.AcceptOffer)
		r.Post("/offers/{offerID}/confirm-payment", offers.ConfirmFiatPayment)
		r.Post("/offers/{offerID}/release", offers.ReleaseSol)
		r.Post("/offers/{offerID}/cancel", offers.CancelOffer)
		r.Post("/offers/{offerID}/dispute", disputes.OpenDispute)

		r.Post("/disputes/{disputeID}/jurors", disputes.AssignJurors)
		r.Post("/disputes/{disputeID}/evidence", disputes.SubmitEvidence)
		r.Post("/disputes/{disputeID}/votes", disputes.CastVote)
		r.Post("/disputes/{disputeID}/finalize", disputes.FinalizeVerdict)
		r.Post("/disputes/{disputeID}/execute", disputes.ExecuteVerdict)

		r.Post("/reputation", reps.CreateReputation)
		r.Post("/reputation/{user}", reps.UpdateReputation)

		r.Post("/rewards/token", rwd.CreateRewardToken)
		r.Post("/rewards/token/update", rwd.UpdateRewardToken)
		r.Post("/rewards/claim", rwd.ClaimRewards)
		r.Post("/rewards/{user}/accrue", rwd.AccrueReward)

		if deps.DevRoutes {
			r.Post("/ledger/deposit", ledger.Deposit)
		}
	})
	return r
}
