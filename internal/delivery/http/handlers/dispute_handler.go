package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dispute"
	disputedto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/dispute"
)

type DisputeHandler struct {
	uc dispute.DisputeUsecase
	errorWriter
}

func (h *DisputeHandler) writeDispute(w http.ResponseWriter, status int, d *domain.Dispute, err error) {
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, status, response.NewDispute(d))
}

func (h *DisputeHandler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	offerID, err := pathAddress(r, "offerID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req request.OpenDisputeRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	d, err := h.uc.OpenDispute(r.Context(), &disputedto.OpenDisputeInput{
		Initiator: caller(r),
		Offer:     offerID,
		Reason:    req.Reason,
	})
	h.writeDispute(w, http.StatusCreated, d, err)
}

func (h *DisputeHandler) AssignJurors(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req request.AssignJurorsRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	d, err := h.uc.AssignJurors(r.Context(), &disputedto.AssignJurorsInput{
		Admin:   caller(r),
		Dispute: id,
		Jurors:  req.Jurors,
	})
	h.writeDispute(w, http.StatusOK, d, err)
}

func (h *DisputeHandler) SubmitEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req request.SubmitEvidenceRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	d, err := h.uc.SubmitEvidence(r.Context(), caller(r), id, req.URL)
	h.writeDispute(w, http.StatusOK, d, err)
}

func (h *DisputeHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req request.CastVoteRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	v, err := h.uc.CastVote(r.Context(), &disputedto.CastVoteInput{
		Juror:   caller(r),
		Dispute: id,
		Choice:  req.Choice,
	})
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.VoteResponse(*v))
}

func (h *DisputeHandler) FinalizeVerdict(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	d, err := h.uc.FinalizeVerdict(r.Context(), caller(r), id)
	h.writeDispute(w, http.StatusOK, d, err)
}

func (h *DisputeHandler) ExecuteVerdict(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	out, err := h.uc.ExecuteVerdict(r.Context(), caller(r), id)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ExecuteVerdictResponse{
		Dispute:      response.NewDispute(out.Dispute),
		Offer:        response.NewOffer(out.Offer),
		Forced:       out.Forced,
		BuyerPayout:  out.BuyerPayout,
		SellerPayout: out.SellerPayout,
	})
}

func (h *DisputeHandler) GetDispute(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	d, err := h.uc.GetDispute(r.Context(), id)
	h.writeDispute(w, http.StatusOK, d, err)
}

func (h *DisputeHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "disputeID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	juror, err := pathAddress(r, "juror")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	v, err := h.uc.GetVote(r.Context(), id, juror)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.VoteResponse(*v))
}

func (h *DisputeHandler) ListDisputes(w http.ResponseWriter, r *http.Request) {
	input := &disputedto.ListDisputesInput{}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.DisputeStatus(s)
		input.Status = &status
	}
	var err error
	if input.Page, err = queryInt32(r, "page"); err != nil {
		h.badRequest(w, err)
		return
	}
	if input.Limit, err = queryInt32(r, "limit"); err != nil {
		h.badRequest(w, err)
		return
	}
	out, err := h.uc.ListDisputes(r.Context(), input)
	if err != nil {
		h.write(w, err)
		return
	}
	disputes := make([]response.DisputeResponse, 0, len(out.Disputes))
	for _, d := range out.Disputes {
		disputes = append(disputes, response.NewDispute(d))
	}
	writeJSON(w, http.StatusOK, response.ListDisputesResponse{
		Disputes:   disputes,
		Pagination: response.NewPagination(out.Pagination),
	})
}
