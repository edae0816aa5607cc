package handlers

import (
	"fmt"
	"net/http"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler struct {
	store domain.Store
	errorWriter
}

func parseAsset(raw string) (domain.Asset, error) {
	switch asset := domain.Asset(raw); asset {
	case domain.AssetBase, domain.AssetReward:
		return asset, nil
	}
	return "", fmt.Errorf("unknown asset %q", raw)
}

func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	asset, err := parseAsset(chi.URLParam(r, "asset"))
	if err != nil {
		h.badRequest(w, err)
		return
	}
	owner, err := pathAddress(r, "owner")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var balance uint64
	err = h.store.View(r.Context(), func(tx domain.Tx) error {
		balance, err = tx.Balance(asset, owner)
		return err
	})
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.BalanceResponse{Owner: owner, Asset: asset, Balance: balance})
}

// Deposit mints base units for local testing. The route is mounted only in
// the local environment.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req request.DepositRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	if req.Asset == "" {
		req.Asset = domain.AssetBase
	}
	if _, err := parseAsset(string(req.Asset)); err != nil {
		h.badRequest(w, err)
		return
	}
	if req.Owner.IsZero() {
		req.Owner = caller(r)
	}
	if req.Amount == 0 {
		h.write(w, fmt.Errorf("deposit of zero: %w", domain.ErrInvalidAmount))
		return
	}

	var balance uint64
	err := h.store.Atomically(r.Context(), func(tx domain.Tx) error {
		if err := tx.Mint(req.Asset, req.Owner, req.Amount); err != nil {
			return err
		}
		var err error
		balance, err = tx.Balance(req.Asset, req.Owner)
		return err
	})
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.BalanceResponse{Owner: req.Owner, Asset: req.Asset, Balance: balance})
}
