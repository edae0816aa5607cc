package handlers

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/admin"
	admindto "github.com/LavaJover/shvark-p2p-exchange/internal/usecase/dto/admin"
)

type AdminHandler struct {
	uc admin.AdminUsecase
	errorWriter
}

func (h *AdminHandler) InitializeAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.InitializeAdminRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	a, err := h.uc.InitializeAdmin(r.Context(), &admindto.InitializeAdminInput{
		Caller:    caller(r),
		Signers:   req.Signers,
		Threshold: req.Threshold,
	})
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.NewAdmin(a))
}

// UpdateAdmin accepts the update once the signatures in the body verify.
// The usecase then checks that the approvers reach the current quorum.
func (h *AdminHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAdminRequest
	if err := decode(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	approvers, err := VerifyApprovals(req)
	if err != nil {
		h.write(w, err)
		return
	}
	a, err := h.uc.UpdateAdmin(r.Context(), &admindto.UpdateAdminInput{
		Nonce:        req.Nonce,
		Approvers:    approvers,
		NewAuthority: req.NewAuthority,
		NewSigners:   req.NewSigners,
		NewThreshold: req.NewThreshold,
	})
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewAdmin(a))
}

// VerifyApprovals returns the signers whose signature over the update
// message verifies. Any bad signature rejects the whole request.
func VerifyApprovals(req request.UpdateAdminRequest) ([]domain.Address, error) {
	msg := domain.UpdateApprovalMessage(req.Nonce, req.NewAuthority, req.NewSigners, req.NewThreshold)
	approvers := make([]domain.Address, 0, len(req.Approvals))
	for _, ap := range req.Approvals {
		sig, err := hex.DecodeString(ap.Signature)
		if err != nil || len(sig) != ed25519.SignatureSize {
			return nil, fmt.Errorf("approval of %s: malformed signature: %w", ap.Signer, domain.ErrUnauthorized)
		}
		if !ed25519.Verify(ed25519.PublicKey(ap.Signer[:]), msg, sig) {
			return nil, fmt.Errorf("approval of %s does not verify: %w", ap.Signer, domain.ErrUnauthorized)
		}
		approvers = append(approvers, ap.Signer)
	}
	return approvers, nil
}

func (h *AdminHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	a, err := h.uc.GetAdmin(r.Context())
	if err != nil {
		h.write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewAdmin(a))
}
