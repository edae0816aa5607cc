package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	rewardsdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/rewards"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/rewards"
)

type RewardsHandler struct {
	uc rewards.RewardsUsecase
	errorWriter
}

func (h *RewardsHandler) writeToken(w http.ResponseWriter, status int, token *domain.RewardToken, err error) {
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, status, response.NewRewardToken(token))
}

func (h *RewardsHandler) CreateRewardToken(w http.ResponseWriter, r *http.Request) {
	var req request.RewardTokenRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	token, err := h.uc.CreateRewardToken(r.Context(), &rewardsdto.CreateRewardTokenInput{
		Admin:             caller(r),
		RewardTokenParams: rewardsdto.RewardTokenParams(req),
	})
	h.writeToken(w, http.StatusCreated, token, err)
}

func (h *RewardsHandler) UpdateRewardToken(w http.ResponseWriter, r *http.Request) {
	var req request.RewardTokenRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	token, err := h.uc.UpdateRewardToken(r.Context(), &rewardsdto.UpdateRewardTokenInput{
		Admin:             caller(r),
		RewardTokenParams: rewardsdto.RewardTokenParams(req),
	})
	h.writeToken(w, http.StatusOK, token, err)
}

func (h *RewardsHandler) GetRewardToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.uc.GetRewardToken(r.Context())
	h.writeToken(w, http.StatusOK, token, err)
}

func (h *RewardsHandler) AccrueReward(w http.ResponseWriter, r *http.Request) {
	user, err := pathAddress(r, "user")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req request.AccrueRewardRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	ur, err := h.uc.AccrueReward(r.Context(), caller(r), user, req.Amount)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewUserRewards(ur))
}

func (h *RewardsHandler) ClaimRewards(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.ClaimRewards(r.Context(), caller(r))
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ClaimRewardsResponse{
		Rewards: response.NewUserRewards(out.Rewards),
		Claimed: out.Claimed,
		Balance: out.Balance,
	})
}

func (h *RewardsHandler) GetUserRewards(w http.ResponseWriter, r *http.Request) {
	user, err := pathAddress(r, "user")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	ur, err := h.uc.GetUserRewards(r.Context(), user)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewUserRewards(ur))
}
