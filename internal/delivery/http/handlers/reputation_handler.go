package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/reputation"
)

type ReputationHandler struct {
	uc reputation.ReputationUsecase
	errorWriter
}

func (h *ReputationHandler) writeReputation(w http.ResponseWriter, rep *domain.Reputation, err error) {
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewReputation(rep))
}

// CreateReputation opens the caller's own reputation record.
func (h *ReputationHandler) CreateReputation(w http.ResponseWriter, r *http.Request) {
	rep, err := h.uc.CreateReputation(r.Context(), caller(r))
	h.writeReputation(w, rep, err)
}

func (h *ReputationHandler) UpdateReputation(w http.ResponseWriter, r *http.Request) {
	user, err := pathAddress(r, "user")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req request.UpdateReputationRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	rep, err := h.uc.UpdateReputation(r.Context(), caller(r), user, req.Outcome)
	h.writeReputation(w, rep, err)
}

func (h *ReputationHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	user, err := pathAddress(r, "user")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	rep, err := h.uc.GetReputation(r.Context(), user)
	h.writeReputation(w, rep, err)
}
