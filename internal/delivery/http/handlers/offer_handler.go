package handlers

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	offerdto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/offer"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/offer"
)

type OfferHandler struct {
	uc offer.OfferUsecase
	errorWriter
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOfferRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	var nonce []byte
	if req.Nonce != "" {
		var err error
		if nonce, err = hex.DecodeString(req.Nonce); err != nil {
			h.badRequest(w, fmt.Errorf("nonce: %w", err))
			return
		}
	} else if sig, ok := middleware.SignatureFrom(r.Context()); ok {
		// a resent request maps onto the same offer address
		derived := domain.DeriveAddress([]byte("offer_nonce"), sig)
		nonce = derived[:]
	}
	o, err := h.uc.CreateOffer(r.Context(), &offerdto.CreateOfferInput{
		Seller:        caller(r),
		Amount:        req.Amount,
		FiatAmount:    req.FiatAmount,
		FiatCurrency:  req.FiatCurrency,
		PaymentMethod: req.PaymentMethod,
		SellerBond:    req.SellerBond,
		Nonce:         nonce,
	})
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewOffer(o))
}

// act runs one instruction the caller takes on the offer in the path.
func (h *OfferHandler) act(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, caller, offerID domain.Address) (*domain.Offer, error)) {
	id, err := pathAddress(r, "offerID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	o, err := fn(r.Context(), caller(r), id)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewOffer(o))
}

func (h *OfferHandler) ListOffer(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.uc.ListOffer)
}

func (h *OfferHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	var req request.AcceptOfferRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	h.act(w, r, func(ctx context.Context, buyer, id domain.Address) (*domain.Offer, error) {
		return h.uc.AcceptOffer(ctx, &offerdto.AcceptOfferInput{Buyer: buyer, Offer: id, Bond: req.Bond})
	})
}

func (h *OfferHandler) ConfirmFiatPayment(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.uc.ConfirmFiatPayment)
}

func (h *OfferHandler) ReleaseSol(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.uc.ReleaseSol)
}

func (h *OfferHandler) CancelOffer(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.uc.CancelOffer)
}

func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "offerID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	o, err := h.uc.GetOffer(r.Context(), id)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewOffer(o))
}

func (h *OfferHandler) GetEscrow(w http.ResponseWriter, r *http.Request) {
	id, err := pathAddress(r, "offerID")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	out, err := h.uc.GetEscrow(r.Context(), id)
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.EscrowResponse{
		ID:        out.Escrow.ID,
		Offer:     out.Escrow.Offer,
		Balance:   out.Balance,
		CreatedAt: out.Escrow.CreatedAt,
		ClosedAt:  out.Escrow.ClosedAt,
	})
}

func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	input := &offerdto.ListOffersInput{}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.OfferStatus(s)
		input.Status = &status
	}
	var err error
	if input.Seller, err = queryAddress(r, "seller"); err != nil {
		h.badRequest(w, err)
		return
	}
	if input.Buyer, err = queryAddress(r, "buyer"); err != nil {
		h.badRequest(w, err)
		return
	}
	if input.Page, err = queryInt32(r, "page"); err != nil {
		h.badRequest(w, err)
		return
	}
	if input.Limit, err = queryInt32(r, "limit"); err != nil {
		h.badRequest(w, err)
		return
	}

	out, err := h.uc.ListOffers(r.Context(), input)
	if err != nil {
		h.write(w, err)
		return
	}
	offers := make([]response.OfferResponse, 0, len(out.Offers))
	for _, o := range out.Offers {
		offers = append(offers, response.NewOffer(o))
	}
	writeJSON(w, http.StatusOK, response.ListOffersResponse{
		Offers:     offers,
		Pagination: response.NewPagination(out.Pagination),
	})
}
