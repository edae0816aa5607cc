package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusOf maps a protocol error to its HTTP status. Errors without a
// protocol kind are internal.
func StatusOf(err error) int {
	kind := domain.KindOf(err)
	if kind == nil {
		return http.StatusInternalServerError
	}
	switch kind {
	case domain.ErrAccountNotFound:
		return http.StatusNotFound
	case domain.ErrUnauthorized, domain.ErrAdminRequired, domain.ErrNotAJuror:
		return http.StatusForbidden
	case domain.ErrTooManyRequests:
		return http.StatusTooManyRequests
	case domain.ErrAccountAlreadyExists, domain.ErrDisputeAlreadyExists, domain.ErrAlreadyVoted,
		domain.ErrInvalidOfferStatus, domain.ErrInvalidDisputeStatus, domain.ErrDisputeExpired,
		domain.ErrTiedVote, domain.ErrInvalidEscrowBalance:
		return http.StatusConflict
	case domain.ErrInsufficientFunds, domain.ErrNoRewardsToClaim, domain.ErrRewardTokenNotInitialized:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// errorWriter renders err as {code, error}. Internal errors are logged and
// hidden from the caller.
type errorWriter struct {
	logger *slog.Logger
}

func (e errorWriter) write(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		e.logger.Error("request failed", "error", err.Error())
		writeJSON(w, status, response.ErrorResponse{Error: "internal error"})
		return
	}
	kind := domain.KindOf(err)
	writeJSON(w, status, response.ErrorResponse{Code: uint32(kind.Code), Error: err.Error()})
}

func (e errorWriter) badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func pathAddress(r *http.Request, name string) (domain.Address, error) {
	a, err := domain.ParseAddress(chi.URLParam(r, name))
	if err != nil {
		return domain.Address{}, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

func queryAddress(r *http.Request, name string) (*domain.Address, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	a, err := domain.ParseAddress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &a, nil
}

func queryInt32(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return int32(v), nil
}

// caller is set by the authentication middleware on every mutating route.
func caller(r *http.Request) domain.Address {
	c, _ := middleware.CallerFrom(r.Context())
	return c
}
